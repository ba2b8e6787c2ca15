package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const tuningKey = "viewmodel_tuning"

// SavedTuning is the user-adjustable part of the view-model tuning stored on
// disk.
type SavedTuning struct {
	LagEnabled bool    `json:"lagEnabled"`
	LagScale   float64 `json:"lagScale"`
	BobEnabled bool    `json:"bobEnabled"`
	BobScale   float64 `json:"bobScale"` // Multiplier on the default bob amplitudes
}

// itemStore is the subset of *gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var tuningStore itemStore

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	tuningStore = m
	return nil
}

// CurrentTuning captures the persisted fields from the active config.
func CurrentTuning() SavedTuning {
	scale := 1.0
	if d := cfg.DefaultViewModel().Bob.Vertical; d > 0 {
		scale = cfg.ViewModel.Bob.Vertical / d
	}
	return SavedTuning{
		LagEnabled: cfg.ViewModel.Lag.Enabled,
		LagScale:   cfg.ViewModel.Lag.Scale,
		BobEnabled: cfg.ViewModel.Bob.Enabled,
		BobScale:   scale,
	}
}

// ApplyTuning writes saved tuning into the active config. Negative values
// are clamped by Validate.
func ApplyTuning(t *SavedTuning) {
	if t == nil {
		return
	}
	d := cfg.DefaultViewModel().Bob

	cfg.ViewModel.Lag.Enabled = t.LagEnabled
	cfg.ViewModel.Lag.Scale = t.LagScale
	cfg.ViewModel.Bob.Enabled = t.BobEnabled
	cfg.ViewModel.Bob.Vertical = d.Vertical * t.BobScale
	cfg.ViewModel.Bob.Lateral = d.Lateral * t.BobScale
	cfg.ViewModel.Bob.Roll = d.Roll * t.BobScale

	for _, fix := range cfg.ViewModel.Validate() {
		log.Warn().Str("component", "persistence").Msgf("adjusted saved tuning %s", fix)
	}
}

// LoadTuning loads tuning from disk. It returns nil with no error when
// nothing has been saved yet or persistence is unavailable.
func LoadTuning() (*SavedTuning, error) {
	if tuningStore == nil {
		return nil, nil
	}

	data, err := tuningStore.LoadItem(tuningKey)
	if err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not load tuning")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var t SavedTuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse saved tuning: %w", err)
	}
	return &t, nil
}

// SaveTuning saves tuning to disk
func SaveTuning(t SavedTuning) error {
	if tuningStore == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := tuningStore.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// SaveCurrentTuning saves the active config, logging instead of failing.
func SaveCurrentTuning() {
	if err := SaveTuning(CurrentTuning()); err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not save tuning")
	}
}

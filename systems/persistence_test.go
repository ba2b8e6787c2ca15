package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	saved := tuningStore
	tuningStore = s
	t.Cleanup(func() { tuningStore = saved })
}

func TestTuning_RoundTrip(t *testing.T) {
	useTuning(t, nil)
	useStore(t, &memStore{items: map[string][]byte{}})

	loaded, err := LoadTuning()
	require.NoError(t, err)
	assert.Nil(t, loaded, "nothing saved yet")

	cfg.ViewModel.Lag.Enabled = false
	cfg.ViewModel.Lag.Scale = 2
	cfg.ViewModel.Bob.Vertical *= 0.5
	SaveCurrentTuning()

	cfg.ViewModel = cfg.DefaultViewModel()
	loaded, err = LoadTuning()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.InDelta(t, 0.5, loaded.BobScale, 1e-9)

	ApplyTuning(loaded)
	d := cfg.DefaultViewModel().Bob
	assert.False(t, cfg.ViewModel.Lag.Enabled)
	assert.Equal(t, 2.0, cfg.ViewModel.Lag.Scale)
	assert.InDelta(t, d.Vertical*0.5, cfg.ViewModel.Bob.Vertical, 1e-9)
	assert.InDelta(t, d.Lateral*0.5, cfg.ViewModel.Bob.Lateral, 1e-9)
	assert.InDelta(t, d.Roll*0.5, cfg.ViewModel.Bob.Roll, 1e-9)
}

func TestApplyTuning_RepairsNegativeValues(t *testing.T) {
	useTuning(t, nil)

	ApplyTuning(&SavedTuning{LagEnabled: true, LagScale: -3, BobEnabled: true, BobScale: -1})

	assert.Equal(t, 0.0, cfg.ViewModel.Lag.Scale)
	assert.Equal(t, 0.0, cfg.ViewModel.Bob.Vertical)
	assert.Equal(t, 0.0, cfg.ViewModel.Bob.Lateral)
}

func TestLoadTuning_UnreadableStoreIsNotFatal(t *testing.T) {
	useStore(t, &memStore{loadErr: errors.New("disk on fire")})

	loaded, err := LoadTuning()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadTuning_CorruptData(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{tuningKey: []byte("{not json")}})

	_, err := LoadTuning()
	assert.ErrorContains(t, err, "parse saved tuning")
}

func TestPersistenceDisabled(t *testing.T) {
	useTuning(t, nil)
	useStore(t, nil)

	assert.NoError(t, SaveTuning(CurrentTuning()))
	loaded, err := LoadTuning()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ConfigName is the file (without extension) Load looks for.
const ConfigName = "viewmodel"

// EnvPrefix prefixes environment overrides, e.g. DOOMERANG_VIEWMODEL_LAG_DELAY.
const EnvPrefix = "DOOMERANG"

// Load overlays configDir/viewmodel.json and DOOMERANG_* environment variables
// onto the built-in defaults, repairs invalid values and installs the result
// into ViewModel and C. A missing file is not an error.
func Load(configDir string) error {
	v := viper.New()
	setDefaults(v, DefaultViewModel())

	v.SetConfigName(ConfigName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Str("component", "config").Str("dir", configDir).Msg("no config file, using defaults")
	}

	// Unmarshal walks every known key, so env overrides are picked up too.
	file := struct {
		ViewModel ViewModelConfig `mapstructure:"viewmodel"`
	}{ViewModel: DefaultViewModel()}
	if err := v.Unmarshal(&file); err != nil {
		return fmt.Errorf("error decoding viewmodel config: %w", err)
	}
	for _, fix := range file.ViewModel.Validate() {
		log.Warn().Str("component", "config").Msgf("adjusted invalid value %s", fix)
	}

	ViewModel = file.ViewModel
	C.LogLevel = v.GetString("logLevel")
	return nil
}

func setDefaults(v *viper.Viper, d ViewModelConfig) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("viewmodel.lag.enabled", d.Lag.Enabled)
	v.SetDefault("viewmodel.lag.delay", d.Lag.Delay)
	v.SetDefault("viewmodel.lag.maxLookback", d.Lag.MaxLookback)
	v.SetDefault("viewmodel.lag.maxAngle", d.Lag.MaxAngle)
	v.SetDefault("viewmodel.lag.scale", d.Lag.Scale)
	v.SetDefault("viewmodel.lag.angleScale", d.Lag.AngleScale)
	v.SetDefault("viewmodel.lag.maxOffset", d.Lag.MaxOffset)

	v.SetDefault("viewmodel.bob.enabled", d.Bob.Enabled)
	v.SetDefault("viewmodel.bob.idleRate", d.Bob.IdleRate)
	v.SetDefault("viewmodel.bob.maxRate", d.Bob.MaxRate)
	v.SetDefault("viewmodel.bob.runSpeed", d.Bob.RunSpeed)
	v.SetDefault("viewmodel.bob.vertical", d.Bob.Vertical)
	v.SetDefault("viewmodel.bob.lateral", d.Bob.Lateral)
	v.SetDefault("viewmodel.bob.roll", d.Bob.Roll)
	v.SetDefault("viewmodel.bob.idleVertical", d.Bob.IdleVertical)
	v.SetDefault("viewmodel.bob.idleLateral", d.Bob.IdleLateral)
	v.SetDefault("viewmodel.bob.idleRoll", d.Bob.IdleRoll)
	v.SetDefault("viewmodel.bob.forwardScale", d.Bob.ForwardScale)
	v.SetDefault("viewmodel.bob.upScale", d.Bob.UpScale)
	v.SetDefault("viewmodel.bob.rightScale", d.Bob.RightScale)
	v.SetDefault("viewmodel.bob.pitchScale", d.Bob.PitchScale)
	v.SetDefault("viewmodel.bob.yawScale", d.Bob.YawScale)

	v.SetDefault("viewmodel.engageDuration", d.EngageDuration)
	v.SetDefault("viewmodel.replicaTickRate", d.ReplicaTickRate)
}

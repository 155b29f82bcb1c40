// cmd/perfval/config.go
package perfval

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/MorchestraWorld/perfval/internal/validate"
)

// loadConfigFile merges the JSON file named by --config into viper. With no
// --config the thresholds come from flag defaults and explicit flags only.
func loadConfigFile() error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
	if err := viper.MergeInConfig(); err != nil {
		return fmt.Errorf("could not read config file %s: %w", path, err)
	}
	return nil
}

// resolveThresholds builds the active protocol. Precedence is explicit
// flags, then the config file, then the protocol defaults (which double as
// the flag defaults).
func resolveThresholds() validate.Thresholds {
	thr := validate.DefaultThresholds()
	thr.MinSampleSize = viper.GetInt("min_sample_size")
	thr.SignificanceLevel = viper.GetFloat64("significance_level")
	thr.MinEffectSize = viper.GetFloat64("min_effect_size")
	thr.MaxCV = viper.GetFloat64("max_cv")
	// Only overridable through the config file; intervals are computed at
	// 95% regardless, so this is a reporting field.
	if cl := viper.GetFloat64("confidence_level"); cl > 0 {
		thr.ConfidenceLevel = cl
	}
	return thr
}

package assemble

import (
	"github.com/rickgao/mdexport/internal/model"
	"github.com/rickgao/mdexport/internal/perturb"
)

const (
	// SwitchThreshold splits every settings switch evenly.
	SwitchThreshold = 0.5
	BenchmarkPrefix = "eurostoxx_"
	ExtrapMethod    = "INVERSE_TIME"
)

// Settings draws the four calibration switches, in a fixed order.
func Settings(id string, g *perturb.Generator) *model.Settings {
	return &model.Settings{
		EquityName: id,
		Values: model.SettingsValues{
			Benchmark:    BenchmarkPrefix + id,
			Weekly:       g.Choice(SwitchThreshold),
			ITMCall:      g.Choice(SwitchThreshold),
			CalibrateDiv: g.Choice(SwitchThreshold),
			RebucketORC:  g.Choice(SwitchThreshold),
			ExtrapMethod: ExtrapMethod,
		},
	}
}

// Config marks the equity active.
func Config(id string) *model.Config {
	return &model.Config{Name: id, Active: true}
}

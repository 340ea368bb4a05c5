package network

import (
	"github.com/Helhest/mrt/config"
	"github.com/Helhest/mrt/geo"
)

// ConflictPolicy decides which weight survives when two construction rules
// write the same pair of codes.
type ConflictPolicy string

const (
	ConflictLastWrite ConflictPolicy = "last"
	ConflictKeepMin   ConflictPolicy = "min"
	ConflictKeepFirst ConflictPolicy = "first"
)

// Options are the fixed parameters of a build
type Options struct {
	AverageSpeedKMH float64
	TransferMinutes float64
	EarthRadiusKM   float64
	LoopLines       []string
	Separator       string
	Conflict        ConflictPolicy
}

// DefaultOptions returns 40 km/h, 3 minute transfers, a 6371 km earth, CC as
// the only loop line and "/" as the code separator.
func DefaultOptions() Options {
	return Options{
		AverageSpeedKMH: 40,
		TransferMinutes: 3,
		EarthRadiusKM:   geo.EarthRadiusKM,
		LoopLines:       []string{"CC"},
		Separator:       "/",
		Conflict:        ConflictLastWrite,
	}
}

// OptionsFromConfig maps the network section of the app config
func OptionsFromConfig(cfg config.NetworkConfig) Options {
	return Options{
		AverageSpeedKMH: cfg.AverageSpeedKMH,
		TransferMinutes: cfg.TransferMinutes,
		EarthRadiusKM:   cfg.EarthRadiusKM,
		LoopLines:       cfg.LoopLines,
		Separator:       cfg.CodeSeparator,
		Conflict:        ConflictPolicy(cfg.EdgeConflict),
	}.withDefaults()
}

// withDefaults fills zero fields. A zero TransferMinutes is kept, a
// negative one is not.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TransferMinutes < 0 {
		o.TransferMinutes = d.TransferMinutes
	}
	if o.AverageSpeedKMH <= 0 {
		o.AverageSpeedKMH = d.AverageSpeedKMH
	}
	if o.EarthRadiusKM <= 0 {
		o.EarthRadiusKM = d.EarthRadiusKM
	}
	if o.Separator == "" {
		o.Separator = d.Separator
	}
	switch o.Conflict {
	case ConflictLastWrite, ConflictKeepMin, ConflictKeepFirst:
	default:
		o.Conflict = ConflictLastWrite
	}
	return o
}

func (o Options) isLoop(line string) bool {
	for _, l := range o.LoopLines {
		if l == line {
			return true
		}
	}
	return false
}

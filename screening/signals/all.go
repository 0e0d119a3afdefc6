package signals

import (
	"github.com/hazardwatch/hazardwatch/screening/engine"
)

// DefaultSignals returns the production signal set, in execution order.
func DefaultSignals() engine.SignalSet {
	return engine.SignalSet{
		Signals: []engine.Signal{
			{Name: engine.SignalText, Run: TextSignal},
			{Name: engine.SignalLocation, Run: LocationSignal},
			{Name: engine.SignalMedia, Run: MediaSignal},
			{Name: engine.SignalDuplicate, Run: DuplicateSignal},
		},
	}
}

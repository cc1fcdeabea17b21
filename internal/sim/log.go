package sim

import (
	"log"

	"github.com/san-kum/boids/internal/mode"
)

// LogObserver logs mode transitions.
type LogObserver struct {
	logger *log.Logger
}

func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnTick(*World) {}

func (o *LogObserver) OnTransition(t mode.Transition) {
	trigger := "key"
	if t.Auto {
		trigger = "timer"
	}
	o.logger.Printf("mode %s -> %s (%s)", t.From, t.To, trigger)
}

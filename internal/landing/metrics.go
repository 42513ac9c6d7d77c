package landing

import (
	"time"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// NoOpMetrics returns a metrics recorder that drops every observation.
func NoOpMetrics() interfaces.LandingMetrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveSaveDuration(time.Duration) {}

func (noopMetrics) IncrementSaveError() {}

func (noopMetrics) IncrementParse() {}

package effects

import (
	"math"

	"go.uber.org/zap"
)

// burstLimit bounds the coordinates a burst accepts.
const burstLimit = 1e9

// TriggerParticleBurst records a burst at (x, y). Drawing happens on the
// caller's side; out of range or NaN coordinates are ignored. A nil logger
// falls back to the global zap logger.
func TriggerParticleBurst(logger *zap.Logger, x, y float64) {
	if logger == nil {
		logger = zap.L()
	}
	if !(math.Abs(x) < burstLimit && math.Abs(y) < burstLimit) {
		return
	}
	logger.Info("particle burst", zap.Float64("x", x), zap.Float64("y", y))
}

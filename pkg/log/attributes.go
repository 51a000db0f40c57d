package log

import (
	"time"

	"github.com/rs/zerolog"
)

// Conventional field names for model events. Using the same keys everywhere
// keeps log queries simple.
const (
	ModelKey     = "model"
	KernelKey    = "kernel"
	OperationKey = "operation"
	SamplesKey   = "n_samples"
	FeaturesKey  = "n_features"
	LambdaKey    = "lambda"
	SigmaKey     = "sigma"
	DurationKey  = "duration"
)

// FitEvent annotates an event with the shape and hyperparameters of a fit.
func FitEvent(e *zerolog.Event, nSamples, nFeatures int, lambda float64) *zerolog.Event {
	return e.Str(OperationKey, "fit").
		Int(SamplesKey, nSamples).
		Int(FeaturesKey, nFeatures).
		Float64(LambdaKey, lambda)
}

// PredictEvent annotates an event with the shape of a prediction request.
func PredictEvent(e *zerolog.Event, nSamples, nFeatures int) *zerolog.Event {
	return e.Str(OperationKey, "predict").
		Int(SamplesKey, nSamples).
		Int(FeaturesKey, nFeatures)
}

// Duration annotates an event with an operation duration.
func Duration(e *zerolog.Event, d time.Duration) *zerolog.Event {
	return e.Dur(DurationKey, d)
}

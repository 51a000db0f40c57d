package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for estimators trained from a feature matrix X
// and a target matrix y.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for fitted estimators that map a feature
// matrix to predictions.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor combines fitting and prediction for scalar-target regression
// models.
type Regressor interface {
	Fitter
	Predictor
}

// Transformer is the interface for stateful feature transformations such as
// standardization.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
}

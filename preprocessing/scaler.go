// Package preprocessing provides feature transformations applied ahead of
// model fitting.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/core/model"
	"github.com/maxjr82/gokrr/pkg/errors"
)

// StandardScaler shifts each feature to zero mean and scales it to unit
// standard deviation. For bandwidth-sensitive kernels like the Gaussian this
// puts all features on a comparable length scale.
type StandardScaler struct {
	model.BaseEstimator

	// Mean and Scale hold the per-feature statistics learned by Fit.
	Mean  []float64
	Scale []float64
}

// NewStandardScaler creates an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes the per-feature mean and standard deviation of X. Features
// with (near) zero variance get scale 1 so that Transform never divides by
// zero.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	mean := make([]float64, c)
	scale := make([]float64, c)

	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		mean[j] = sum / float64(r)
	}

	for j := 0; j < c; j++ {
		var ss float64
		for i := 0; i < r; i++ {
			d := X.At(i, j) - mean[j]
			ss += d * d
		}
		scale[j] = math.Sqrt(ss / float64(r))
		if scale[j] < 1e-8 {
			scale[j] = 1
		}
	}

	s.Mean = mean
	s.Scale = scale
	s.SetFitted(r, c)
	return nil
}

// Transform standardizes X using the fitted statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.RequireFitted("StandardScaler", "Transform"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	if _, p := s.Dimensions(); c != p {
		return nil, errors.NewDimensionError("StandardScaler.Transform", p, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return out, nil
}

// FitTransform fits the scaler on X and returns the standardized X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps standardized values back to the original feature
// space.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.RequireFitted("StandardScaler", "InverseTransform"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	if _, p := s.Dimensions(); c != p {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", p, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, X.At(i, j)*s.Scale[j]+s.Mean[j])
		}
	}
	return out, nil
}

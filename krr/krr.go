// Package krr implements kernel ridge regression.
//
// The model fits dual coefficients α = (K + λI)⁻¹ y, where K is the kernel
// Gram matrix of the training inputs, and predicts new targets as
// y* = K(X*, Xtrain)·α. With the Gaussian kernel and a small λ this
// interpolates smooth curves such as diatomic potential-energy surfaces
// almost exactly through the training points.
package krr

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/core/model"
	"github.com/maxjr82/gokrr/kernel"
	"github.com/maxjr82/gokrr/metrics"
	"github.com/maxjr82/gokrr/pkg/errors"
)

// Hyperparameter defaults, matching the reference workflow.
const (
	DefaultLambda = 0.1
	DefaultSigma  = 0.01
)

// KRR is a kernel ridge regression model for a single scalar target.
//
// A model is created with New, trained once (or repeatedly) with Fit and
// queried with Predict. Fit is atomic: on error the previously fitted state,
// including "not fitted", is left untouched. Concurrent Predict calls on a
// fitted model are safe; Fit must not run concurrently with other calls.
type KRR struct {
	model.BaseEstimator

	kern   kernel.Kernel
	lambda float64
	sigma  float64

	// Retained training inputs and dual coefficients, set by Fit.
	trainX *mat.Dense
	alpha  *mat.VecDense
}

// New creates a KRR model using the named kernel ("Linear" or "Gaussian";
// "RBF" is accepted for Gaussian). Lambda defaults to 0.1 and the Gaussian
// bandwidth sigma to 0.01; both can be overridden with options.
func New(kernelName string, opts ...Option) (*KRR, error) {
	m := &KRR{
		lambda: DefaultLambda,
		sigma:  DefaultSigma,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.lambda < 0 {
		return nil, errors.NewValueError("krr.New", "lambda must be non-negative")
	}

	k, err := kernel.New(kernelName, m.sigma)
	if err != nil {
		return nil, err
	}
	m.kern = k
	return m, nil
}

// Kernel returns the canonical name of the model's kernel.
func (m *KRR) Kernel() string { return m.kern.Name() }

// Lambda returns the regularization strength.
func (m *KRR) Lambda() float64 { return m.lambda }

// Sigma returns the Gaussian bandwidth.
func (m *KRR) Sigma() float64 { return m.sigma }

// Alpha returns a copy of the fitted dual coefficients, one per training
// sample, or nil if the model has not been fitted.
func (m *KRR) Alpha() *mat.VecDense {
	if m.alpha == nil {
		return nil
	}
	return mat.VecDenseCopyOf(m.alpha)
}

// Fit trains the model on X (n×p) and y (n×1 column, or a vector).
//
// It solves (K + λI)α = y. The regularized matrix is symmetric positive
// definite for λ > 0, so a Cholesky factorization is tried first; if that
// fails (λ = 0 with degenerate points, or severe ill-conditioning) a dense
// LU solve is attempted before giving up with ErrSingularMatrix.
func (m *KRR) Fit(X, y mat.Matrix) error {
	n, p := X.Dims()
	ry, cy := y.Dims()

	if n == 0 || p == 0 {
		return errors.NewModelError("KRR.Fit", "empty data", errors.ErrEmptyData)
	}
	if cy != 1 {
		return errors.NewValueError("KRR.Fit", "y must be a column vector")
	}
	if ry != n {
		return errors.NewDimensionError("KRR.Fit", n, ry, 0)
	}

	trainX := mat.DenseCopyOf(X)
	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	k, err := m.kern.Gram(trainX, trainX)
	if err != nil {
		return errors.Wrap(err, "KRR.Fit: kernel computation failed")
	}
	for i := 0; i < n; i++ {
		k.Set(i, i, k.At(i, i)+m.lambda)
	}

	alpha, err := solveSPD(k, yVec)
	if err != nil {
		return err
	}

	m.trainX = trainX
	m.alpha = alpha
	m.SetFitted(n, p)
	return nil
}

// Predict returns the predicted targets for X (m×p) as an m×1 matrix. The
// feature dimension p must match the training data.
func (m *KRR) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := m.RequireFitted("KRR", "Predict"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("KRR.Predict", "empty data", errors.ErrEmptyData)
	}
	if _, p := m.Dimensions(); c != p {
		return nil, errors.NewDimensionError("KRR.Predict", p, c, 1)
	}

	ks, err := m.kern.Gram(X, m.trainX)
	if err != nil {
		return nil, errors.Wrap(err, "KRR.Predict: kernel computation failed")
	}

	out := mat.NewDense(r, 1, nil)
	out.Mul(ks, m.alpha)
	return out, nil
}

// Score returns the coefficient of determination R² of Predict(X) against y.
func (m *KRR) Score(X, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := y.Dims()
	if rp, _ := pred.Dims(); rp != n {
		return 0, errors.NewDimensionError("KRR.Score", rp, n, 0)
	}
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, pred.At(i, 0))
	}
	return metrics.R2(yTrue, yPred)
}

// solveSPD solves k·α = y for a symmetric k, preferring Cholesky and
// falling back to LU.
func solveSPD(k *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	n := y.Len()

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, k.At(i, j))
		}
	}

	alpha := mat.NewVecDense(n, nil)

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		if solved(chol.SolveVecTo(alpha, y)) {
			return alpha, nil
		}
	}

	var lu mat.LU
	lu.Factorize(k)
	if !solved(lu.SolveVecTo(alpha, false, y)) {
		return nil, errors.NewModelError("KRR.Fit", "regularized kernel matrix is singular; try increasing lambda", errors.ErrSingularMatrix)
	}
	return alpha, nil
}

// solved interprets a gonum solve result. A finite mat.Condition is a
// warning about ill-conditioning, not a failure: the solution is still
// valid, which matters for the near-zero lambdas used for interpolation.
func solved(err error) bool {
	if err == nil {
		return true
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return !math.IsInf(float64(cond), 1)
	}
	return false
}

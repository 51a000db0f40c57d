// Package metrics provides regression quality measures for fitted curves.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/pkg/errors"
)

// MSE returns the mean squared error between true and predicted targets.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE returns the root mean squared error, in the units of the target.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2 returns the coefficient of determination. A perfect fit scores 1; a
// model no better than predicting the mean scores 0; worse fits go
// negative. When yTrue is constant the residual-free case scores 1 and
// every other prediction scores 0.
func R2(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2", n, yPred.Len(), 0)
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.AtVec(i)
	}
	mean /= float64(n)

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		res := yTrue.AtVec(i) - yPred.AtVec(i)
		tot := yTrue.AtVec(i) - mean
		ssRes += res * res
		ssTot += tot * tot
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// MaxAbsError returns the largest absolute difference between true and
// predicted targets, the natural check for interpolation quality.
func MaxAbsError(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MaxAbsError", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MaxAbsError", n, yPred.Len(), 0)
	}

	var worst float64
	for i := 0; i < n; i++ {
		if d := math.Abs(yTrue.AtVec(i) - yPred.AtVec(i)); d > worst {
			worst = d
		}
	}
	return worst, nil
}

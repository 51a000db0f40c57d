// Package gokrr provides kernel ridge regression for fitting smooth
// one-dimensional curves, in particular the potential-energy curves of
// diatomic molecules.
//
// The library follows a scikit-learn-like shape: a model is constructed
// with its kernel and hyperparameters, trained with Fit and queried with
// Predict, all over gonum matrices.
//
//	import (
//	    "github.com/maxjr82/gokrr/kernel"
//	    "github.com/maxjr82/gokrr/krr"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	X := mat.NewDense(3, 1, []float64{0, 1, 2})
//	y := mat.NewDense(3, 1, []float64{0, 1, 4})
//
//	model, err := krr.New(kernel.Gaussian, krr.WithSigma(1), krr.WithLambda(1e-8))
//	if err != nil {
//	    // unknown kernel name or invalid hyperparameters
//	}
//	if err := model.Fit(X, y); err != nil {
//	    // singular system or shape mismatch
//	}
//	pred, err := model.Predict(mat.NewDense(1, 1, []float64{0.5}))
//
// # Packages
//
//   - krr: the kernel ridge regression model
//   - kernel: Linear and Gaussian (RBF) Gram-matrix kernels
//   - dataset: loading of whitespace-delimited curve data and index splits
//   - metrics: MSE, RMSE, MAE and R² for judging fits
//   - preprocessing: feature standardization
//   - visualize: prediction-vs-training curve plots via gonum/plot
//   - cmd/gokrr: command-line front end for the full fit/predict pipeline
package gokrr

// Package model provides the fitted-state bookkeeping shared by gokrr
// estimators.
package model

import (
	"sync"

	"github.com/maxjr82/gokrr/pkg/errors"
)

// BaseEstimator tracks whether an estimator has been fitted and the shape
// of the training data it saw. Estimators embed it and flip the state once
// Fit succeeds.
//
// The state is guarded by an RWMutex so that concurrent Predict calls on a
// fitted model are safe. Fit itself is single-writer: callers that refit a
// shared model concurrently must serialize those calls themselves.
type BaseEstimator struct {
	mu        sync.RWMutex
	fitted    bool
	nSamples  int
	nFeatures int
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fitted
}

// SetFitted marks the estimator as fitted with the given training shape.
func (e *BaseEstimator) SetFitted(nSamples, nFeatures int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fitted = true
	e.nSamples = nSamples
	e.nFeatures = nFeatures
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fitted = false
	e.nSamples = 0
	e.nFeatures = 0
}

// Dimensions returns the training shape recorded by SetFitted.
func (e *BaseEstimator) Dimensions() (nSamples, nFeatures int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.nSamples, e.nFeatures
}

// RequireFitted returns a NotFittedError naming the model and method if the
// estimator has not been fitted yet.
func (e *BaseEstimator) RequireFitted(modelName, method string) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

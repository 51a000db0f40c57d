package krr

// Option configures a KRR model at construction time.
type Option func(*KRR)

// WithLambda sets the regularization strength added to the diagonal of the
// kernel matrix. Values around 1e-12 to 1 are typical; larger values trade
// training-point accuracy for conditioning and smoothness.
func WithLambda(lambda float64) Option {
	return func(m *KRR) {
		m.lambda = lambda
	}
}

// WithSigma sets the Gaussian kernel bandwidth. It has no effect on the
// linear kernel.
func WithSigma(sigma float64) Option {
	return func(m *KRR) {
		m.sigma = sigma
	}
}

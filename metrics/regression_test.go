package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   *mat.VecDense
		yPred   *mat.VecDense
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred: mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			want:  0,
		},
		{
			name:  "uniform half-unit errors",
			yTrue: mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred: mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:  0.25,
		},
		{
			name:    "length mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MSE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MSE() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	want := math.Sqrt(12.5)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("RMSE() = %g, want %g", got, want)
	}
}

func TestMAE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(3, []float64{2, 2, 1})

	got, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE failed: %v", err)
	}
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("MAE() = %g, want 1", got)
	}
}

func TestR2(t *testing.T) {
	tests := []struct {
		name  string
		yTrue *mat.VecDense
		yPred *mat.VecDense
		want  float64
	}{
		{
			name:  "perfect fit",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{1, 2, 3}),
			want:  1,
		},
		{
			name:  "mean prediction",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{2, 2, 2}),
			want:  0,
		},
		{
			name:  "constant target matched",
			yTrue: mat.NewVecDense(3, []float64{5, 5, 5}),
			yPred: mat.NewVecDense(3, []float64{5, 5, 5}),
			want:  1,
		},
		{
			name:  "constant target missed",
			yTrue: mat.NewVecDense(3, []float64{5, 5, 5}),
			yPred: mat.NewVecDense(3, []float64{4, 5, 6}),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2(tt.yTrue, tt.yPred)
			if err != nil {
				t.Fatalf("R2 failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("R2() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestMaxAbsError(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{0, 1, 2})
	yPred := mat.NewVecDense(3, []float64{0.1, 0.5, 2})

	got, err := MaxAbsError(yTrue, yPred)
	if err != nil {
		t.Fatalf("MaxAbsError failed: %v", err)
	}
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("MaxAbsError() = %g, want 0.5", got)
	}
}

package visualize

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/pkg/errors"
)

func TestCurvePlotSave(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0.5, 1.0, 1.5})
	y := mat.NewDense(3, 1, []float64{-0.5, -1.1, -0.9})

	c := NewCurvePlot("KRR fit", "R, Angstrom", "E, Hartree")
	if err := c.AddTruth(x, y); err != nil {
		t.Fatalf("AddTruth failed: %v", err)
	}
	if err := c.AddPrediction(x, y); err != nil {
		t.Fatalf("AddPrediction failed: %v", err)
	}
	if err := c.AddTraining(x, y); err != nil {
		t.Fatalf("AddTraining failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "curve.png")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestCurvePlotLengthMismatch(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{0, 1})
	y := mat.NewDense(3, 1, []float64{0, 1, 2})

	c := NewCurvePlot("", "", "")
	err := c.AddPrediction(x, y)
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("expected DimensionError, got %T: %v", err, err)
	}
}

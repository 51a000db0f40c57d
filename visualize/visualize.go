// Package visualize renders fitted potential-energy curves with gonum/plot.
// It reproduces the reference figures: the predicted curve as a line, the
// training points as a scatter, and optionally the ground-truth curve
// underneath.
package visualize

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/maxjr82/gokrr/pkg/errors"
)

// CurvePlot accumulates series for one prediction-vs-training figure.
type CurvePlot struct {
	p *plot.Plot
}

// NewCurvePlot creates an empty plot with the given title and axis labels.
func NewCurvePlot(title, xLabel, yLabel string) *CurvePlot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	return &CurvePlot{p: p}
}

// AddPrediction draws the model output as a line.
func (c *CurvePlot) AddPrediction(x, y mat.Matrix) error {
	xys, err := columnXYs(x, y)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "visualize: prediction line")
	}
	line.Color = color.RGBA{B: 255, A: 255}
	c.p.Add(line)
	c.p.Legend.Add("prediction", line)
	return nil
}

// AddTruth draws a reference curve as a muted line under the other series.
func (c *CurvePlot) AddTruth(x, y mat.Matrix) error {
	xys, err := columnXYs(x, y)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "visualize: truth line")
	}
	line.Color = color.RGBA{R: 128, G: 128, B: 128, A: 120}
	line.Width = vg.Points(3)
	c.p.Add(line)
	c.p.Legend.Add("ground truth", line)
	return nil
}

// AddTraining draws the training samples as red points.
func (c *CurvePlot) AddTraining(x, y mat.Matrix) error {
	xys, err := columnXYs(x, y)
	if err != nil {
		return err
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "visualize: training scatter")
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	c.p.Add(scatter)
	c.p.Legend.Add("training data", scatter)
	return nil
}

// Save writes the figure to path; the format follows the file extension
// (.png, .svg, .pdf).
func (c *CurvePlot) Save(path string) error {
	if err := c.p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "visualize: save %s", path)
	}
	return nil
}

// columnXYs pairs the first column of x with the first column of y.
func columnXYs(x, y mat.Matrix) (plotter.XYs, error) {
	rx, _ := x.Dims()
	ry, _ := y.Dims()
	if rx != ry {
		return nil, errors.NewDimensionError("visualize", rx, ry, 0)
	}
	if rx == 0 {
		return nil, errors.NewModelError("visualize", "empty series", errors.ErrEmptyData)
	}

	xys := make(plotter.XYs, rx)
	for i := 0; i < rx; i++ {
		xys[i].X = x.At(i, 0)
		xys[i].Y = y.At(i, 0)
	}
	return xys, nil
}

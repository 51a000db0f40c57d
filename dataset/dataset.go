// Package dataset loads the whitespace-delimited numeric text files used
// for potential-energy-curve fitting: one value per line for target files,
// one row of feature values per line for feature files, and 1-based index
// files describing train/test splits.
//
// Lines that are empty or start with '#' are skipped, matching the format
// accepted by numpy.loadtxt, which produced the reference data files.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/pkg/errors"
)

// ReadMatrix reads a numeric table from r. Every non-comment line becomes a
// row; all rows must have the same number of columns.
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	var (
		data []float64
		rows int
		cols int
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}

		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, errors.NewValueError("dataset.ReadMatrix",
				fmt.Sprintf("line %d has %d columns, expected %d", line, len(fields), cols))
		}

		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.NewValueError("dataset.ReadMatrix",
					fmt.Sprintf("line %d: invalid number %q", line, f))
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset.ReadMatrix")
	}
	if rows == 0 {
		return nil, errors.NewModelError("dataset.ReadMatrix", "no data rows", errors.ErrEmptyData)
	}

	return mat.NewDense(rows, cols, data), nil
}

// ReadVector reads a single-column numeric table from r.
func ReadVector(r io.Reader) (*mat.VecDense, error) {
	m, err := ReadMatrix(r)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if cols != 1 {
		return nil, errors.NewDimensionError("dataset.ReadVector", 1, cols, 1)
	}

	v := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}

// ReadIndices reads a list of 1-based row indices from r and converts them
// to 0-based, the convention of the itrain.dat/itest.dat split files.
func ReadIndices(r io.Reader) ([]int, error) {
	var idx []int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		for _, f := range strings.Fields(stripComment(sc.Text())) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.NewValueError("dataset.ReadIndices",
					fmt.Sprintf("line %d: invalid index %q", line, f))
			}
			if v < 1 {
				return nil, errors.NewValueError("dataset.ReadIndices",
					fmt.Sprintf("line %d: index %d is not 1-based", line, v))
			}
			idx = append(idx, v-1)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset.ReadIndices")
	}
	if len(idx) == 0 {
		return nil, errors.NewModelError("dataset.ReadIndices", "no indices", errors.ErrEmptyData)
	}
	return idx, nil
}

// ReadMatrixFile reads a numeric table from the named file.
func ReadMatrixFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: %s", path)
	}
	return m, nil
}

// ReadVectorFile reads a single-column table from the named file.
func ReadVectorFile(path string) (*mat.VecDense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	v, err := ReadVector(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: %s", path)
	}
	return v, nil
}

// ReadIndicesFile reads a 1-based index list from the named file.
func ReadIndicesFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	idx, err := ReadIndices(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: %s", path)
	}
	return idx, nil
}

// Select gathers the given rows of m into a new matrix, in index order.
func Select(m mat.Matrix, indices []int) (*mat.Dense, error) {
	r, c := m.Dims()
	out := mat.NewDense(len(indices), c, nil)
	for i, idx := range indices {
		if idx < 0 || idx >= r {
			return nil, errors.NewValueError("dataset.Select",
				fmt.Sprintf("index %d out of range [0, %d)", idx, r))
		}
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(idx, j))
		}
	}
	return out, nil
}

// SelectVec gathers the given entries of v into a new vector.
func SelectVec(v *mat.VecDense, indices []int) (*mat.VecDense, error) {
	out := mat.NewVecDense(len(indices), nil)
	for i, idx := range indices {
		if idx < 0 || idx >= v.Len() {
			return nil, errors.NewValueError("dataset.SelectVec",
				fmt.Sprintf("index %d out of range [0, %d)", idx, v.Len()))
		}
		out.SetVec(i, v.AtVec(idx))
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive as
// an n×1 matrix, the shape Predict expects for one-dimensional curves.
func Linspace(start, stop float64, n int) (*mat.Dense, error) {
	if n < 2 {
		return nil, errors.NewValueError("dataset.Linspace", "n must be at least 2")
	}

	out := mat.NewDense(n, 1, nil)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		out.Set(i, 0, start+float64(i)*step)
	}
	// Snap the endpoint to avoid accumulation error.
	out.Set(n-1, 0, stop)
	return out, nil
}

// WriteTable writes the columns side by side as whitespace-delimited text,
// one row per line, in a format ReadMatrix can load back.
func WriteTable(w io.Writer, cols ...*mat.VecDense) error {
	if len(cols) == 0 {
		return errors.NewModelError("dataset.WriteTable", "no columns", errors.ErrEmptyData)
	}
	n := cols[0].Len()
	for _, c := range cols {
		if c.Len() != n {
			return errors.NewDimensionError("dataset.WriteTable", n, c.Len(), 0)
		}
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		for j, c := range cols {
			if j > 0 {
				if _, err := bw.WriteString("  "); err != nil {
					return errors.Wrap(err, "dataset.WriteTable")
				}
			}
			if _, err := fmt.Fprintf(bw, "%.12g", c.AtVec(i)); err != nil {
				return errors.Wrap(err, "dataset.WriteTable")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "dataset.WriteTable")
		}
	}
	return errors.WithStack(bw.Flush())
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

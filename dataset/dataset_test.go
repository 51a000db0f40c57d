package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/pkg/errors"
)

func TestReadMatrix(t *testing.T) {
	in := strings.NewReader(`
# bond length, energy
0.50  -0.25
0.75  -1.05

1.00  -1.17
`)
	m, err := ReadMatrix(in)
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 0.75, m.At(1, 0))
	assert.Equal(t, -1.17, m.At(2, 1))
}

func TestReadMatrixErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ragged rows", "1 2\n3\n"},
		{"non-numeric", "1 2\n3 x\n"},
		{"only comments", "# nothing\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMatrix(strings.NewReader(tt.in))
			require.Error(t, err)
		})
	}
}

func TestReadVector(t *testing.T) {
	v, err := ReadVector(strings.NewReader("1.0\n2.5\n4.0\n"))
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 2.5, v.AtVec(1))

	_, err = ReadVector(strings.NewReader("1 2\n3 4\n"))
	require.Error(t, err, "multi-column input must be rejected")
}

func TestReadIndices(t *testing.T) {
	idx, err := ReadIndices(strings.NewReader("1\n5\n3\n"))
	require.NoError(t, err)
	// Converted from 1-based to 0-based, order preserved.
	assert.Equal(t, []int{0, 4, 2}, idx)

	_, err = ReadIndices(strings.NewReader("0\n1\n"))
	require.Error(t, err, "0 is not a valid 1-based index")

	_, err = ReadIndices(strings.NewReader("1.5\n"))
	require.Error(t, err)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()

	xPath := filepath.Join(dir, "R.dat")
	require.NoError(t, os.WriteFile(xPath, []byte("0.5\n1.0\n1.5\n"), 0o644))

	iPath := filepath.Join(dir, "itrain.dat")
	require.NoError(t, os.WriteFile(iPath, []byte("1\n3\n"), 0o644))

	x, err := ReadMatrixFile(xPath)
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)

	v, err := ReadVectorFile(xPath)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	idx, err := ReadIndicesFile(iPath)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, idx)

	_, err = ReadMatrixFile(filepath.Join(dir, "missing.dat"))
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{
		0, 10,
		1, 11,
		2, 12,
		3, 13,
	})

	out, err := Select(m, []int{3, 0})
	require.NoError(t, err)
	r, c := out.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 3.0, out.At(0, 0))
	assert.Equal(t, 10.0, out.At(1, 1))

	_, err = Select(m, []int{4})
	require.Error(t, err)

	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve))
}

func TestSelectVec(t *testing.T) {
	v := mat.NewVecDense(3, []float64{7, 8, 9})

	out, err := SelectVec(v, []int{2, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 7}, out.RawVector().Data)

	_, err = SelectVec(v, []int{-1})
	require.Error(t, err)
}

func TestLinspace(t *testing.T) {
	g, err := Linspace(0.5, 5, 100)
	require.NoError(t, err)

	r, c := g.Dims()
	require.Equal(t, 100, r)
	require.Equal(t, 1, c)
	assert.Equal(t, 0.5, g.At(0, 0))
	assert.Equal(t, 5.0, g.At(99, 0))
	assert.InDelta(t, 0.5+4.5/99, g.At(1, 0), 1e-12)

	_, err = Linspace(0, 1, 1)
	require.Error(t, err)
}

func TestWriteTableRoundTrip(t *testing.T) {
	x := mat.NewVecDense(3, []float64{0.5, 1.0, 1.5})
	y := mat.NewVecDense(3, []float64{-0.25, -1.17, -0.9})

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, x, y))

	m, err := ReadMatrix(&buf)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, x.AtVec(i), m.At(i, 0), 1e-9)
		assert.InDelta(t, y.AtVec(i), m.At(i, 1), 1e-9)
	}
}

func TestWriteTableLengthMismatch(t *testing.T) {
	x := mat.NewVecDense(2, []float64{1, 2})
	y := mat.NewVecDense(3, []float64{1, 2, 3})

	var buf bytes.Buffer
	err := WriteTable(&buf, x, y)
	require.Error(t, err)

	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))
}

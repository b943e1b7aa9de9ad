// SPDX-License-Identifier: MIT

package mmio_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/sparsix/mmio"
	"github.com/stretchr/testify/require"
)

// entry flattens a parsed triplet for multiset assertions.
type entry struct {
	Row, Col int
	Val      float64
}

// entriesOf collects a COO matrix's triplets in storage order.
func entriesOf(t *testing.T, in string) (rows, cols int, out []entry) {
	t.Helper()

	m, err := mmio.Read(strings.NewReader(in))
	require.NoError(t, err)

	out = make([]entry, 0, m.NumEntries())
	for n := 0; n < m.NumEntries(); n++ {
		r, c, v, err := m.Entry(n)
		require.NoError(t, err)
		out = append(out, entry{Row: r, Col: c, Val: v})
	}

	return m.Rows(), m.Cols(), out
}

func TestReadCoordinateReal(t *testing.T) {
	rows, cols, got := entriesOf(t, `%%MatrixMarket matrix coordinate real general
% a comment to skip

3 4 3
1 1 5.0
2 2 8
3 3 -3e2
`)
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, []entry{{0, 0, 5}, {1, 1, 8}, {2, 2, -300}}, got)
}

func TestReadCoordinateSymmetric(t *testing.T) {
	_, _, got := entriesOf(t, `%%MatrixMarket matrix coordinate real symmetric
3 3 3
1 1 1
2 1 2
3 3 3
`)
	// Off-diagonal (2,1) mirrors to (1,2); diagonals do not.
	require.ElementsMatch(t, []entry{
		{0, 0, 1}, {1, 0, 2}, {0, 1, 2}, {2, 2, 3},
	}, got)
}

func TestReadCoordinatePattern(t *testing.T) {
	_, _, got := entriesOf(t, `%%MatrixMarket matrix coordinate pattern general
2 2 2
1 2
2 1
`)
	require.Equal(t, []entry{{0, 1, 1}, {1, 0, 1}}, got)
}

func TestReadCoordinateInteger(t *testing.T) {
	_, _, got := entriesOf(t, `%%MatrixMarket matrix coordinate integer general
1 1 1
1 1 -42
`)
	require.Equal(t, []entry{{0, 0, -42}}, got)
}

func TestReadArrayPrunesZeros(t *testing.T) {
	// Array data is column-major: the stream below is the 2x2 matrix
	// [[1, 2], [0, 0]].
	rows, cols, got := entriesOf(t, `%%MatrixMarket matrix array real general
2 2
1
0
2
0
`)
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.ElementsMatch(t, []entry{{0, 0, 1}, {0, 1, 2}}, got)
}

func TestReadBannerCaseInsensitive(t *testing.T) {
	_, _, got := entriesOf(t, `%%MatrixMarket MATRIX Coordinate Real General
1 1 1
1 1 7
`)
	require.Equal(t, []entry{{0, 0, 7}}, got)
}

func TestReadBadHeader(t *testing.T) {
	for name, in := range map[string]string{
		"empty":          "",
		"no banner":      "3 3 1\n1 1 5\n",
		"short banner":   "%%MatrixMarket matrix coordinate\n",
		"bad size line":  "%%MatrixMarket matrix coordinate real general\n3 x 1\n",
		"negative shape": "%%MatrixMarket matrix coordinate real general\n-3 3 1\n",
		"missing size":   "%%MatrixMarket matrix coordinate real general\n% only comments\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mmio.Read(strings.NewReader(in))
			require.ErrorIs(t, err, mmio.ErrBadHeader)
		})
	}
}

func TestReadUnsupportedFormat(t *testing.T) {
	for name, in := range map[string]string{
		"complex field":   "%%MatrixMarket matrix coordinate complex general\n",
		"hermitian":       "%%MatrixMarket matrix coordinate real hermitian\n",
		"vector object":   "%%MatrixMarket vector coordinate real general\n",
		"array symmetric": "%%MatrixMarket matrix array real symmetric\n",
		"array pattern":   "%%MatrixMarket matrix array pattern general\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mmio.Read(strings.NewReader(in))
			require.ErrorIs(t, err, mmio.ErrUnsupportedFormat)
		})
	}
}

func TestReadBadEntry(t *testing.T) {
	for name, in := range map[string]string{
		"non-numeric":   "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 abc\n",
		"missing value": "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1\n",
		"row too large": "%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 5\n",
		"zero index":    "%%MatrixMarket matrix coordinate real general\n2 2 1\n0 1 5\n",
		"bad array":     "%%MatrixMarket matrix array real general\n1 1\nxyz\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mmio.Read(strings.NewReader(in))
			require.ErrorIs(t, err, mmio.ErrBadEntry)
		})
	}
}

func TestReadTruncated(t *testing.T) {
	_, err := mmio.Read(strings.NewReader("%%MatrixMarket matrix coordinate real general\n3 3 5\n1 1 1\n"))
	require.ErrorIs(t, err, mmio.ErrTruncated)

	_, err = mmio.Read(strings.NewReader("%%MatrixMarket matrix array real general\n2 2\n1\n2\n"))
	require.ErrorIs(t, err, mmio.ErrTruncated)
}

func TestReadEmptyCoordinate(t *testing.T) {
	rows, cols, got := entriesOf(t, "%%MatrixMarket matrix coordinate real general\n4 5 0\n")
	require.Equal(t, 4, rows)
	require.Equal(t, 5, cols)
	require.Empty(t, got)
}

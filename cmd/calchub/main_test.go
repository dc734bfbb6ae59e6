package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCells(t *testing.T) {
	cells, err := parseCells("1, 2; 3,4.5")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, cells)

	_, err = parseCells("1,x;3,4")
	assert.ErrorIs(t, err, errBadCells)

	_, err = parseCells("1,2;")
	assert.ErrorIs(t, err, errBadCells)
}

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		code   int
		stdout string
	}{
		{"classic", []string{"-mode", "classic", "-op", "mul", "-a", "6", "-b", "7"}, 0, "Result: 42\n"},
		{"divide by zero", []string{"-op", "div", "-b", "0"}, 1, "arith: cannot divide by zero\n"},
		{"currency", []string{"-mode", "currency"}, 0, "💰 1 USD = 83.50 INR\n"},
		{"units", []string{"-mode", "units", "-from", "m", "-to", "ft", "-amount", "2"}, 0, "2 m = 6.5617 ft\n"},
		{"matrix", []string{"-mode", "matrix", "-cells", "2,0;0,2"}, 0, "Determinant: 4\nEigenvalues: [2 2]\nInverse:\n[0.5, 0]\n[0, 0.5]\n"},
		{"constants", []string{"-mode", "constants", "-symbol", "c"}, 0, "Speed of Light (c): 299,792,458 m/s\n"},
		{"plot bounds", []string{"-mode", "plot", "-xmin", "-500"}, 1, ""},
		{"matrix negative size", []string{"-mode", "matrix", "-size", "-1"}, 1, "hub: request out of bounds: matrix size 0 outside [2, 5]\n"},
		{"matrix zero size", []string{"-mode", "matrix", "-size", "0"}, 1, "hub: request out of bounds: matrix size 0 outside [2, 5]\n"},
		{"matrix default size", []string{"-mode", "matrix", "-size", "3"}, 0, ""},
		{"bad mode", []string{"-mode", "graph"}, 1, ""},
		{"bad op", []string{"-op", "pow"}, 1, ""},
		{"bad flag", []string{"-nope"}, 1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			assert.Equal(t, tc.code, code, stderr.String())
			if tc.stdout != "" {
				assert.Equal(t, tc.stdout, stdout.String())
			}
		})
	}
}

func TestRun_RatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tables:
  - category: currency
    rates:
      - {from: USD, to: INR, factor: 84}
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "currency", "-rates", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "💰 1 USD = 84.00 INR\n", stdout.String())

	code = run([]string{"-mode", "currency", "-rates", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRun_VerboseLogsDispatch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "constants", "-v"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "msg=dispatch")
	assert.Contains(t, stderr.String(), "mode=constants")
}

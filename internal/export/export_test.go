package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahertz/qwave/internal/storage"
)

func TestJSONRoundTrip(t *testing.T) {
	meta := &storage.RunMetadata{ID: "harmonic_1", Kind: storage.KindSpectrum, Potential: "harmonic", N: 2}
	header := []string{"x", "psi0"}
	rows := [][]float64{{0, 0.5}, {1, -0.5}}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, meta, header, rows))

	var out RunData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, *meta, out.Meta)
	assert.Equal(t, header, out.Header)
	assert.Equal(t, rows, out.Rows)
}

func TestJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	meta := &storage.RunMetadata{ID: "well_1", Kind: storage.KindEvolution, Potential: "well"}
	require.NoError(t, JSONFile(path, meta, []string{"time"}, [][]float64{{0}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"well_1"`)
}

func TestCurvesToSVG(t *testing.T) {
	curves := []Curve{
		{Label: "psi0", X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}, Color: "#ff0000"},
		{Label: "psi1", X: []float64{0, 1, 2}, Y: []float64{1, 0, -1}},
	}
	svg := CurvesToSVG(curves, 640, 480)

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	assert.Contains(t, svg, `width="640" height="480"`)
	assert.Contains(t, svg, `stroke="#ff0000"`)
	assert.Contains(t, svg, `stroke="#00ff00"`, "missing colour falls back to the default")
	assert.Equal(t, 2, strings.Count(svg, "<path"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestCurvesToSVGDegenerate(t *testing.T) {
	assert.Empty(t, CurvesToSVG(nil, 100, 100))

	// A flat curve still renders without dividing by a zero range.
	svg := CurvesToSVG([]Curve{{X: []float64{0, 1}, Y: []float64{2, 2}}}, 100, 100)
	assert.Contains(t, svg, "<path")

	// Single-point curves are skipped but the document stays well formed.
	svg = CurvesToSVG([]Curve{{X: []float64{1}, Y: []float64{1}}}, 100, 100)
	assert.NotContains(t, svg, "<path")
	assert.Contains(t, svg, "</svg>")
}

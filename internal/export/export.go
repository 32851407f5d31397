package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ahertz/qwave/internal/storage"
)

type RunData struct {
	Meta   storage.RunMetadata `json:"meta"`
	Header []string            `json:"header"`
	Rows   [][]float64         `json:"rows"`
}

// JSON writes a stored run with its full data table to w.
func JSON(w io.Writer, meta *storage.RunMetadata, header []string, rows [][]float64) error {
	data := RunData{Meta: *meta, Header: header, Rows: rows}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// JSONFile writes a stored run to a file.
func JSONFile(path string, meta *storage.RunMetadata, header []string, rows [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return JSON(f, meta, header, rows)
}

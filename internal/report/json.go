package report

import (
	"encoding/json"
	"io"

	"github.com/posturekit/posturekit/internal/audit"
)

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep audit.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

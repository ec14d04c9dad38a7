package cli

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.Bold)
	successColor = color.New(color.FgGreen)
)

func (a *app) jsonOutput() bool {
	return a.cfg.Output == "json"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

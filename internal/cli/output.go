package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	labelColor   = color.New(color.Bold)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "! "+format+"\n", args...)
}

func label(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprintf("%-12s", name+":"), value)
}

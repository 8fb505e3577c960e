package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// render prints v as indented JSON when --json is set, else the formatted
// text produced by format.
func render(cmd *cobra.Command, app *App, v any, format func() string) error {
	out := cmd.OutOrStdout()
	if app.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprint(out, format())
	return err
}

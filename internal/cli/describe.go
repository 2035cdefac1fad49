package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/veldran/powerdesk/internal/desc"
	"github.com/veldran/powerdesk/internal/power"
)

// ColumnDescription pairs one canonical column with its description.
type ColumnDescription struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Position    int    `json:"position"`
	Description string `json:"description"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [column...]",
		Short: "Print the column description table",
		Long: `Print the bundled description for every canonical column, or only for
the named columns.

Example:
  powerdesk describe BaseDamage VariableImpulse`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDescribe(opts *RootOptions, names []string, cmd *cobra.Command) error {
	table, err := desc.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "loading descriptions", err)
	}

	specs := power.Fields()
	if len(names) > 0 {
		specs = make([]power.ColumnSpec, 0, len(names))
		for _, name := range names {
			spec, ok := power.Lookup(name)
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown column %q", name))
			}
			specs = append(specs, spec)
		}
	}

	rows := make([]ColumnDescription, len(specs))
	for i, spec := range specs {
		rows[i] = ColumnDescription{
			Name:        spec.Name,
			Kind:        spec.Kind.String(),
			Position:    spec.Position,
			Description: table[spec.Name],
		}
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(rows, func(w io.Writer) {
		for _, row := range rows {
			fmt.Fprintf(w, "%s (%s)\n    %s\n", row.Name, row.Kind, row.Description)
		}
	})
}

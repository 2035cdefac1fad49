package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/veldran/powerdesk/internal/swz"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Strict bool
}

// InspectResult summarizes one loaded file.
type InspectResult struct {
	Path        string       `json:"path"`
	Records     int          `json:"records"`
	Skipped     []SkippedRow `json:"skipped,omitempty"`
	HadSentinel bool         `json:"had_sentinel"`
}

// SkippedRow reports one row dropped during load.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Load a powerTypes file and report what it holds",
		Long: `Load a powerTypes file and report record count, sentinel presence,
and any rows skipped under the partial-success policy.

Example:
  powerdesk inspect Game/powerTypes.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit nonzero when any row was skipped")

	return cmd
}

func runInspect(opts *InspectOptions, path string, cmd *cobra.Command) error {
	log, err := newLogger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer log.Sync()

	res, err := swz.ReadFile(path, log)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading powers", err)
	}

	result := InspectResult{
		Path:        path,
		Records:     len(res.Powers),
		HadSentinel: res.HadSentinel,
	}
	for _, s := range res.Skipped {
		result.Skipped = append(result.Skipped, SkippedRow{Row: s.Row, Reason: s.Err.Error()})
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "%s: %d power(s)\n", path, result.Records)
		if !result.HadSentinel {
			fmt.Fprintln(w, "note: file has no sentinel line (will be added on save)")
		}
		for _, s := range result.Skipped {
			fmt.Fprintf(w, "skipped row %d: %s\n", s.Row, s.Reason)
		}
	}); err != nil {
		return err
	}

	if opts.Strict && len(result.Skipped) > 0 {
		return NewExitError(ExitCheckFailed, fmt.Sprintf("%d row(s) skipped", len(result.Skipped)))
	}
	return nil
}

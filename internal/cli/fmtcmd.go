package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldran/powerdesk/internal/swz"
)

// FmtOptions holds flags for the fmt command.
type FmtOptions struct {
	*RootOptions
	Output string
	Check  bool
}

// FmtResult summarizes one canonicalize run.
type FmtResult struct {
	Path      string `json:"path"`
	Output    string `json:"output,omitempty"`
	Records   int    `json:"records"`
	Canonical bool   `json:"canonical"`
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a powerTypes file in canonical form",
		Long: `Load a powerTypes file and rewrite it with the sentinel line, canonical
header, and canonical cell formatting. With --check nothing is written;
the command exits nonzero when the file is not already canonical.

Example:
  powerdesk fmt Game/powerTypes.csv -o build/powerTypes.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write result here instead of in place")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "report instead of rewriting")

	return cmd
}

func runFmt(opts *FmtOptions, path string, cmd *cobra.Command) error {
	log, err := newLogger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer log.Sync()

	res, err := swz.ReadFile(path, log)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading powers", err)
	}

	var canonical bytes.Buffer
	if err := swz.Write(&canonical, res.Powers); err != nil {
		return WrapExitError(ExitCommandError, "encoding powers", err)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "re-reading input", err)
	}
	result := FmtResult{
		Path:      path,
		Records:   len(res.Powers),
		Canonical: bytes.Equal(onDisk, canonical.Bytes()),
	}

	if opts.Check {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		if err := formatter.Success(result, func(w io.Writer) {
			if result.Canonical {
				fmt.Fprintf(w, "%s is canonical\n", path)
			} else {
				fmt.Fprintf(w, "%s is not canonical\n", path)
			}
		}); err != nil {
			return err
		}
		if !result.Canonical {
			return NewExitError(ExitCheckFailed, fmt.Sprintf("%s is not canonical", path))
		}
		return nil
	}

	out := opts.Output
	if out == "" {
		out = path
	}
	result.Output = out
	if err := swz.WriteFile(out, res.Powers); err != nil {
		return WrapExitError(ExitCommandError, "saving powers", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "wrote %d power(s) to %s\n", result.Records, out)
	})
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRejectsUnknownFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"describe", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootListsSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["inspect"])
	assert.True(t, names["fmt"])
	assert.True(t, names["describe"])
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCheckFailed, GetExitCode(NewExitError(ExitCheckFailed, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	for i, want := range Commands {
		got, ok := ParseCommand(i + 1)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	for _, n := range []int{0, -1, 10} {
		got, ok := ParseCommand(n)
		assert.False(t, ok)
		assert.Equal(t, CommandInvalid, got)
	}
}

func TestCommand_Strings(t *testing.T) {
	t.Parallel()

	assert.Len(t, Commands, 9)
	assert.Equal(t, CommandExit, Commands[8])
	assert.Equal(t, "update_area", CommandUpdateArea.String())
	assert.Equal(t, "command(42)", Command(42).String())
	assert.Equal(t, "Invalid option", CommandInvalid.Label())
}

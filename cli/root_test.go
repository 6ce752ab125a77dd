package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "legalgpt "+Version+"\n", out)
}

func TestConfigShowRedactsSecrets(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini-secret")
	t.Setenv("DATABASE_URL", "postgres://user:pw@db/legalgpt")

	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "7860")
	assert.Contains(t, out, redactedMarker)
	assert.NotContains(t, out, "gemini-secret")
	assert.NotContains(t, out, "user:pw")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "browse", "export", "mcp", "config", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

const redactedMarker = "********"

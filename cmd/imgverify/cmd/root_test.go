package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCommand(t *testing.T) {
	root := GetRootCommand()
	require.NotNil(t, root)
	assert.Equal(t, "imgverify", root.Use)
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := GetRootCommand()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["verify"], "verify subcommand should be registered")
	assert.True(t, names["serve"], "serve subcommand should be registered")
	assert.True(t, names["batch"], "batch subcommand should be registered")
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := GetRootCommand().PersistentFlags()
	for _, name := range []string{"config", "verbose", "log-level", "version"} {
		assert.NotNil(t, flags.Lookup(name), "flag %s should exist", name)
	}
}

func TestRootCommand_VersionFlag(t *testing.T) {
	root := GetRootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "imgverify version")
}

func TestGetConfig(t *testing.T) {
	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "eng", cfg.Pipeline.Language)
}

func TestGetConfigLoader(t *testing.T) {
	loader := GetConfigLoader()
	require.NotNil(t, loader)
	assert.Same(t, loader, GetConfigLoader())
}

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-ml/orchid/internal/domain/config"
)

func TestConfigPathFromArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no flag", []string{"db", "setup"}, ""},
		{"separate value", []string{"--config", "a.toml", "db"}, "a.toml"},
		{"equals form", []string{"db", "--config=b.toml"}, "b.toml"},
		{"trailing flag without value", []string{"db", "--config"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, configPathFromArgs(tc.args))
		})
	}
}

func TestFormatError_PlainError(t *testing.T) {
	assert.Equal(t, "boom", formatError(errors.New("boom")))
}

func TestFormatError_UserError(t *testing.T) {
	err := &config.UserError{
		Code:       config.ErrCodeConfigNotFound,
		Message:    "config file not found",
		Context:    "/tmp/orchid.toml",
		Suggestion: "omit --config to use defaults",
		Underlying: errors.New("no such file"),
	}

	msg := formatError(err)
	assert.Contains(t, msg, "config file not found")
	assert.Contains(t, msg, "/tmp/orchid.toml")
	assert.Contains(t, msg, "Suggestion: omit --config")
	assert.NotContains(t, msg, "no such file", "technical details only appear in verbose mode")
}

func TestFormatError_UserError_Verbose(t *testing.T) {
	verbose = true
	t.Cleanup(func() { verbose = false })

	err := &config.UserError{
		Code:       config.ErrCodeConfigParse,
		Message:    "config file is not valid TOML",
		Underlying: errors.New("unexpected token"),
	}

	assert.Contains(t, formatError(err), "unexpected token")
}

func TestPrintErrorTo(t *testing.T) {
	var buf bytes.Buffer
	printErrorTo(&buf, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "boom")
}

func TestRegisterDBCommands_PopulatesGroup(t *testing.T) {
	require.NoError(t, registerDBCommands())

	names := make([]string, 0)
	for _, cmd := range dbCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"dump", "setup", "verify"})
}

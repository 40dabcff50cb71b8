package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
)

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app, err := NewApp(context.Background(), config.ClientConfig{}, logger.Nop(), strings.NewReader(input), out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app, out
}

func TestRun_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"frobnicate"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_NoCommandPrintsUsage(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out.String(), "commands:")
}

func TestCmdGenerate(t *testing.T) {
	app, out := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"gen", "-len", "24", "-no-symbols"})

	require.NoError(t, err)
	password := strings.TrimSpace(out.String())
	assert.Len(t, password, 24)
	assert.NotContains(t, password, "!")
}

func TestCmdCheck_WeakPassword(t *testing.T) {
	app, out := newTestApp(t, "password\n")

	err := app.Run(context.Background(), []string{"check"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "score:")
	assert.Contains(t, out.String(), "contains a common pattern")
}

func TestCmdRegister_MismatchedSecrets(t *testing.T) {
	app, _ := newTestApp(t, "first-secret\nsecond-secret\n")

	err := app.Run(context.Background(), []string{"register", "-u", "alice"})

	assert.ErrorIs(t, err, ErrSecretsDiffer)
}

func TestCmdRegister_RequiresLogin(t *testing.T) {
	app, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"register"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "-u login is required")
}

func TestCmdUpdate_RequiresLoginAndID(t *testing.T) {
	app, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"update", "-id", "abc"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "-u login and -id item id are required")
}

func TestCmdAdd_RejectsUnknownType(t *testing.T) {
	app, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"add", "-u", "alice", "-n", "x", "-T", "credit_card"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item type")
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/notetree/internal/app"
	"github.com/heartmarshall/notetree/internal/auth"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DOTENV_PATH", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, app.BuildVersion()+"\n", out)
}

func TestTokenCmd_MintsValidToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("AUTH_JWT_ISSUER", "notetree-test")

	out, err := execute(t, "token", "--subject", "alice", "--ttl", "2h")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "expires: "))

	jwt := auth.NewJWTManager(testSecret, "notetree-test", time.Hour, clockwork.NewRealClock())
	subject, err := jwt.ValidateToken(context.Background(), lines[0])
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	expires, err := time.Parse(time.RFC3339, strings.TrimPrefix(lines[1], "expires: "))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expires, time.Minute)
}

func TestTokenCmd_AuthDisabled(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := execute(t, "token", "--subject", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth is disabled")
}

func TestTokenCmd_SubjectRequired(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	_, err := execute(t, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject")
}

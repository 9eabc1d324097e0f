package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()
	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DescartaCamposEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"state": "Texas", "user_agent": "curl"}).Info("query")

	assert.Contains(t, buf.String(), "state=Texas")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_MantemCamposDoServidorEDosJobs(t *testing.T) {
	t.Setenv("APP_ENV", "")
	buf := captureOutput(t)

	L.WithField("address", ":6001").WithFields(Fields{
		"timeout":       "15s",
		"cron":          "0 * * * *",
		"cron_schedule": "0 * * * *",
		"cron_type":     "state-ranking",
		"sync_enabled":  true,
		"snapshot_id":   "abc123",
		"states":        8,
		"remote_addr":   "127.0.0.1",
	}).Info("server: starting")

	out := buf.String()
	for _, want := range []string{"address=", "timeout=15s", "cron=", "cron_schedule=", "cron_type=state-ranking", "sync_enabled=true", "snapshot_id=abc123", "states=8"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_MantemTudoEmProducao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("user_agent", "curl").Info("query")

	assert.Contains(t, buf.String(), "user_agent=curl")
	assert.Contains(t, buf.String(), id)
}

package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/doodle/internal/application/session"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

func TestApp_Status(t *testing.T) {
	sess, err := session.New(config.Default(), 42, session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	sess.Tick()
	a := &app{sess: sess}

	status := a.status()
	assert.Contains(t, status, "seed 42")
	assert.Contains(t, status, "tick 1")
	assert.NotContains(t, status, "height")
}

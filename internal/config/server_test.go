package config

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerRequiresEngineAndLogger(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	_, err := NewServer(WithLogger(logger))
	assert.Error(t, err)

	_, err = NewServer(WithFiber(NewFiber(logger)))
	assert.Error(t, err)
}

func TestServerShutdown(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv, err := NewServer(WithFiber(NewFiber(logger)), WithLogger(logger))
	require.NoError(t, err)

	// With no open listeners this drains immediately; the point is that the
	// signal path has a graceful stop to call.
	require.NoError(t, srv.Shutdown())
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/breadit-api/internal/config"
)

func TestNew_WithoutLoki(t *testing.T) {
	for _, env := range []string{"dev", "prod"} {
		log, err := New(config.App{Environment: env})
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

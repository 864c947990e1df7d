package debug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/segmentio/bitfield/internal/debug"
)

func TestFormat(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	debug.SetLogger(zap.New(core))
	defer debug.SetLogger(nil)

	debug.Format("dropped %d", 1)
	assert.Equal(t, 0, logs.Len())

	debug.Toggle(true)
	defer debug.Toggle(false)

	debug.Format("field %q at offset %d", "a", 3)
	if assert.Equal(t, 1, logs.Len()) {
		assert.Equal(t, `field "a" at offset 3`, logs.All()[0].Message)
	}

	called := false
	debug.Do(func() { called = true })
	assert.True(t, called)
}

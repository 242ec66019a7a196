//go:build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Debugf("test message with args: %s", "value")
	logger.Errorf("test error")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false, true)

	logger.Logf("cloning %s", "owner/repo")
	logger.Debugf("hidden %d", 1)
	logger.Errorf("boom")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "cloning owner/repo")
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "boom")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true, true)

	logger.Debugf("running hook %q", "Run Commands")

	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), `running hook "Run Commands"`)
}

func TestLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false, true)

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			logger.Logf("concurrent message from goroutine %d", id)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("concurrent message")))
}

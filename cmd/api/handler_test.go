package api

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{engine: gin.New()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, "127.0.0.1:0") }()

	// Let the listener come up before asking it to stop.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation drains and returns cleanly")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{engine: gin.New()}

	err := h.Run(context.Background(), "not-an-address")
	assert.Error(t, err)
}

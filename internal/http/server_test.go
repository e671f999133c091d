package http

import (
	"context"
	stdhttp "net/http"
	"testing"
	"time"

	"printshop-service/internal/auth"
	"printshop-service/internal/config"
	"printshop-service/internal/live"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownLeavesStartWithServerClosed(t *testing.T) {
	hub := live.NewHub()
	defer hub.Close()

	jwtService := auth.NewJWTService("test-secret-key-at-least-32-chars!", time.Hour)

	deps := &ServerDependencies{
		Config: &config.Config{
			Server: config.ServerConfig{
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 5 * time.Second,
			},
			App: config.AppConfig{MaxImageUploadSize: 1 << 20, DashboardRecent: 5},
		},
		Hub:            hub,
		JWTService:     jwtService,
		AuthMiddleware: auth.NewMiddleware(jwtService),
	}

	srv := NewServer(deps)

	startErr := make(chan error, 1)
	go func() {
		startErr <- srv.Start("127.0.0.1:0")
	}()

	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-startErr:
		// A drained shutdown surfaces as ErrServerClosed, not a failure.
		assert.ErrorIs(t, err, stdhttp.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

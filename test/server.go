package test

import (
	"net/http/httptest"
	"testing"

	"github.com/kakeibo-app/backend/internal/config"
	"github.com/kakeibo-app/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// Server starts the API backed by the test database. It returns the
// server and the URL the API is mounted at.
func Server(t *testing.T) (*httptest.Server, string) {
	cfg, err := config.Load()
	require.Nil(t, err, "Configuration could not be loaded")

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err, "Router could not be initialized")

	router.AttachRoutes(Controller(), r.Group(cfg.APIURL.Path), cfg.EnablePprof)

	server := httptest.NewServer(r)
	t.Cleanup(func() {
		server.Close()
		teardown()
	})

	return server, server.URL + cfg.APIURL.Path
}

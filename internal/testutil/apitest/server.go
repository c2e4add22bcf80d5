// Package apitest runs the full HTTP API over scripted zones for tests of
// its consumers.
package apitest

import (
	"context"
	"net/http/httptest"

	"github.com/pratik-mahalle/calendrical/internal/api/handlers"
	"github.com/pratik-mahalle/calendrical/internal/api/router"
	"github.com/pratik-mahalle/calendrical/internal/config"
	"github.com/pratik-mahalle/calendrical/internal/pkg/validator"
	"github.com/pratik-mahalle/calendrical/internal/services"
	"github.com/pratik-mahalle/calendrical/internal/testutil"
	"github.com/pratik-mahalle/calendrical/pkg/datetime"
)

// Server is a running API. Rules is set when it runs over the scripted zones.
type Server struct {
	*httptest.Server
	Rules  *testutil.MockZoneRules
	cancel context.CancelFunc
}

// NewServer starts a server over testutil.MockZoneRules. Close stops it.
func NewServer() *Server {
	rules := testutil.NewMockZoneRules()
	srv := NewServerWithRules(rules)
	srv.Rules = rules
	return srv
}

// NewServerWithRules starts a server over any zone rules
func NewServerWithRules(rules datetime.ZoneRules) *Server {
	log := testutil.NewTestLogger()
	service := services.NewCalendarService(datetime.NewZones(rules), log)
	val := validator.New()

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := router.New(ctx, cfg, log, &router.Handlers{
		Health:   handlers.NewHealthHandler(service, log),
		Calendar: handlers.NewCalendarHandler(service, log, val),
		Zone:     handlers.NewZoneHandler(service, log, val),
	})
	return &Server{Server: httptest.NewServer(h), cancel: cancel}
}

// Close shuts the server down
func (s *Server) Close() {
	s.Server.Close()
	s.cancel()
}

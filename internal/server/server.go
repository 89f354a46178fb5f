package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bkovacic/game-sync-go/internal/config"
	"github.com/bkovacic/game-sync-go/internal/modules/core"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/commands"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/queries"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = (*HTTPServer)(nil)

// HTTPServer is the composition root for the application.
type HTTPServer struct {
	server *http.Server
	cancel context.CancelFunc
}

func NewHTTPServer(conf config.Config) (*HTTPServer, error) {
	router, registry, err := NewRouter(conf)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	if conf.SessionTTL > 0 {
		go reapLoop(ctx, registry, conf.SessionTTL, conf.ReapInterval, conf.Logger)
	}

	server := &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(conf.Port)),
		Handler: router,
	}

	return &HTTPServer{server: server, cancel: cancel}, nil
}

// NewRouter wires the session registry, the mediator pipeline, and the
// protocol routes. Split out from NewHTTPServer so tests can run the
// full stack against an in-process listener.
func NewRouter(conf config.Config) (http.Handler, *store.Registry, error) {
	zap.ReplaceGlobals(conf.Logger)

	registry := store.NewRegistry()

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: conf.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: conf.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	joinGameHandler := commands.NewJoinGameCommandHandler(registry)
	err := mediator.RegisterRequestHandler[commands.JoinGameCommand, commands.JoinGameResponse](
		joinGameHandler,
	)
	if err != nil {
		return nil, nil, err
	}

	updateGameHandler := commands.NewUpdateGameCommandHandler(registry)
	err = mediator.RegisterRequestHandler[commands.UpdateGameCommand, commands.UpdateGameResponse](
		updateGameHandler,
	)
	if err != nil {
		return nil, nil, err
	}

	getGameHandler := queries.NewGetGameQueryHandler(registry)
	err = mediator.RegisterRequestHandler[queries.GetGameQuery, queries.GameSnapshot](
		getGameHandler,
	)
	if err != nil {
		return nil, nil, err
	}

	r := chi.NewRouter()
	r.Use(core.CORSMiddleware)
	r.Use(core.CorrelationIDMiddleware)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		core.WriteMethodNotAllowed(w, r, fmt.Errorf("Method not allowed"))
	})

	r.Options("/multiplayer", multiplayer.HandlePreflight)
	r.Post("/multiplayer", multiplayer.HandleAction)
	r.Get("/multiplayer", multiplayer.HandleGameState)

	return r, registry, nil
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	s.cancel()
	return s.server.Close()
}

func reapLoop(
	ctx context.Context,
	registry *store.Registry,
	ttl time.Duration,
	interval time.Duration,
	logger *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if reaped := registry.Reap(ttl); reaped > 0 {
				logger.Info(
					"reaped idle sessions",
					zap.Int("reaped", reaped),
					zap.Int("remaining", registry.Count()),
				)
			}
		}
	}
}

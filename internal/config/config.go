package config

import (
	"time"

	"github.com/bkovacic/game-sync-go/internal/modules/env"

	"go.uber.org/zap"
)

const (
	PortEnv         = "PORT"
	SessionTTLEnv   = "SESSION_TTL"
	ReapIntervalEnv = "SESSION_REAP_INTERVAL"
)

type Config struct {
	Logger *zap.Logger

	Port int

	// SessionTTL is how long an idle session survives before the reaper
	// removes it. Zero disables reaping entirely - sessions then live
	// for the lifetime of the process.
	SessionTTL   time.Duration
	ReapInterval time.Duration
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Logger:       logger,
		Port:         env.MustGetInt(PortEnv),
		SessionTTL:   env.GetDuration(SessionTTLEnv, 0),
		ReapInterval: env.GetDuration(ReapIntervalEnv, time.Minute),
	}, nil
}

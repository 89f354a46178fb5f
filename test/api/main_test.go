package main

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bkovacic/game-sync-go/internal/config"
	"github.com/bkovacic/game-sync-go/internal/modules/multiplayer/store"
	"github.com/bkovacic/game-sync-go/internal/server"

	"go.uber.org/zap"
)

type IntegrationTestFixture struct {
	client   *http.Client
	baseURL  string
	registry *store.Registry
}

var fixture = IntegrationTestFixture{}

func TestMain(m *testing.M) {
	conf := config.Config{
		Logger:       zap.NewNop(),
		SessionTTL:   0,
		ReapInterval: time.Minute,
	}

	router, registry, err := server.NewRouter(conf)
	if err != nil {
		log.Fatal(err)
	}

	testServer := httptest.NewServer(router)

	fixture = IntegrationTestFixture{
		client:   testServer.Client(),
		baseURL:  testServer.URL,
		registry: registry,
	}

	code := m.Run()
	testServer.Close()
	os.Exit(code)
}

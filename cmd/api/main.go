package main

import (
	"log"
	"os"
	"path"

	"github.com/bkovacic/game-sync-go/internal/config"
	"github.com/bkovacic/game-sync-go/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) > 1 {
		rootPath := os.Args[1]
		if rootPath == "" {
			log.Fatal("root directory path is empty")
		}

		if err := godotenv.Load(path.Join(rootPath, "config.env")); err != nil {
			log.Fatal(err)
		}
	}

	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	srv, err := server.NewHTTPServer(conf)
	if err != nil {
		log.Fatal(err)
	}

	defer func() {
		if err := srv.Stop(); err != nil {
			log.Fatal(err)
		}
	}()

	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}

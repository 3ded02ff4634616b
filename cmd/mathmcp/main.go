package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "mathmcp/internal/api/http"
	"mathmcp/internal/env"
	"mathmcp/internal/utils"
)

func main() {
	configPath := flag.String("config", utils.ConfigPath, "config file path (yaml)")
	flag.Parse()

	// == bootstrap ==
	bootstrap := env.NewBootstrapManager()
	if err := bootstrap.SetupRuntime(); err != nil {
		log.Fatal(err)
	}

	cfg, err := env.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// == config hot reload ==
	watcher := env.NewConfigWatcher(*configPath, func(next env.Config) {
		log.Printf("[*] config reloaded: log level %s", next.Log.Level)
	})
	if err := watcher.Start(context.Background()); err != nil {
		log.Printf("[!] config watcher disabled: %v", err)
	}

	// == rest api + mcp ==
	router, err := httpapi.NewApiRouter(cfg)
	if err != nil {
		log.Fatal(err)
	}

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("[*] math mcp server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

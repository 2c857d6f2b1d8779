// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/alto-starter/internal/config"
	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/server"
	"github.com/MKhiriev/alto-starter/internal/utils"
	"github.com/MKhiriev/alto-starter/starter"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfigWithFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.NewLogger("alto-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.Service)
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	router := chi.NewRouter()
	st, err := starter.Initialize(context.Background(), router, cfg.Service, cfg.Environment, cfg.Deployment,
		starter.WithLogger(log.Logger),
		starter.WithRegion(cfg.AWSRegion),
		starter.WithLocalConfigPath(cfg.LocalConfigPath),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing starter")
	}

	router.Get("/api/whoami", whoami)

	srv, err := server.NewServer(router, st.Metrics(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err = st.Close(ctx); err != nil {
		log.Err(err).Msg("error closing starter")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

// whoami echoes the authenticated caller.
func whoami(w http.ResponseWriter, r *http.Request) {
	user, ok := starter.CurrentUser(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

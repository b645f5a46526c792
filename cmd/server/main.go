package main

import (
	"fmt"

	"github.com/MKhiriev/go-bookstore/internal/books"
	"github.com/MKhiriev/go-bookstore/internal/config"
	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/internal/media"
	"github.com/MKhiriev/go-bookstore/internal/routing"
	"github.com/MKhiriev/go-bookstore/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookstore-server")

	flags := config.ParseFlags()
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	flags.Apply(cfg)

	log.Debug().Any("server", cfg.Server).Msg("received configs")

	strategy, err := media.Resolve(cfg.Node())
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving json library")
	}
	log.Info().Stringer("json-library", strategy).Msg("serialization strategy resolved")

	service := books.NewService(log)

	table, err := routing.Compose(cfg.Node(), strategy, service, routing.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("error composing routes")
	}

	transport, err := server.BuildTransport(flags.SSL, flags.HTTP2)
	if err != nil {
		log.Fatal().Err(err).Msg("error building transport")
	}

	bootstrap := server.NewBootstrap(cfg.Server, table, transport, log)
	if err := bootstrap.Run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
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

package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/cicconee/lez-map/internal/config"
	"github.com/cicconee/lez-map/internal/datex"
	"github.com/cicconee/lez-map/internal/geojson"
	"github.com/cicconee/lez-map/internal/server"
	"github.com/cicconee/lez-map/internal/zone"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

var serve bool

func main() {
	flag.BoolVar(&serve, "serve", false, "serve the generated collection over HTTP instead of running a single export")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	logger := log.Default()

	client := &datex.Client{
		BaseURL:   cfg.Source.BaseURL,
		UserAgent: cfg.Source.UserAgent,
	}
	writer := &geojson.Writer{Dir: cfg.Output.Dir}

	zones := zone.New(client, writer, logger)
	zones.OutputFile = cfg.Output.File

	var store *zone.Store
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatalln(err)
		}

		store = zone.NewStore(db)
		zones.Store = store
	}

	if serve {
		srv := server.Server{
			Addr:     cfg.Server.Port,
			Router:   chi.NewRouter(),
			Interval: cfg.Server.RefreshInterval(),
			Logger:   logger,
			Zones:    zones,
			Runs:     store,
		}
		if err := srv.Start(); err != nil {
			log.Println(err)
		}
		return
	}

	logger.Printf("starting data update at %s", time.Now().Format(time.RFC3339))

	result, err := zones.Run(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	logger.Printf("data update finished at %s (resources=%d, features=%d, failures=%d)",
		time.Now().Format(time.RFC3339),
		result.Resources,
		result.Features,
		len(result.Fails))
}

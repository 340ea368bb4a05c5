package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/Helhest/mrt"
	"github.com/Helhest/mrt/config"
	"github.com/Helhest/mrt/formatter"
	"github.com/Helhest/mrt/internal"
	"github.com/Helhest/mrt/network"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	configPath := flag.String("config", "", "config file (default: config.yml search paths)")
	stationsPath := flag.String("stations", "", "station CSV path or URL (overrides config)")
	from := flag.String("from", "NS16", "origin station code")
	to := flag.String("to", "EW32", "destination station code")
	format := flag.String("format", "text", "text|json|xml")
	flag.Parse()

	internal.InitLogging()
	config.LoadDotEnv()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *stationsPath != "" {
		cfg.Stations.Path = *stationsPath
	}

	recs, err := newFetcher().fetchStations(cfg.Stations.Path)
	if err != nil {
		log.Fatalf("stations: %v", err)
	}
	router := lib.NewRouter(network.OptionsFromConfig(cfg.Network), cfg.Cache)
	router.Reload(recs)

	switch *mode {
	case "oneshot":
		g, version := router.Snapshot()
		short := router.Shortest(*from, *to)
		fast := router.Fastest(*from, *to)
		res := formatter.NewRouteResponse(g, &short, &fast)
		res.NetworkVersion = version
		out, err := formatter.NewResponseBuilder().Build(res, *format)
		if err != nil {
			log.Fatalf("format: %v", err)
		}
		fmt.Print(string(out))
		if !short.Found() {
			os.Exit(1)
		}
	case "serve":
		srv := lib.NewServer(router, cfg.Server)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func loadConfig(path string) (config.AppConfig, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	if err := config.LoadAppConfig(); err != nil {
		return config.AppConfig{}, err
	}
	return config.Config, nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/fetcher"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/sink/homeassistant"
	mqttsink "github.com/WinteruOfficiel/next-tramway/internal/tramway/sink/mqtt"
)

func main() {
	// Load .env file if it exists; in deployment everything comes from the
	// environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(
		logger.ParseLevel(cfg.Logging.Level),
		logger.ConsoleWriter(),
		logger.FileWriter(cfg.Logging.FilePath),
	)

	if err := cfg.Transit.Validate(); err != nil {
		log.Fatal("Invalid transit configuration", "error", err)
	}

	lines, err := config.LoadLines(cfg.LinesPath)
	if err != nil {
		log.Fatal("Failed to load lines configuration", "path", cfg.LinesPath, "error", err)
	}

	log.Info("next-tramway starting",
		"stop_id", cfg.Transit.StopID,
		"update_interval", cfg.Transit.UpdateInterval,
		"lines", len(lines.Lines),
		"log_level", cfg.Logging.Level,
	)

	stopTimesFetcher := fetcher.NewHTTPFetcher(cfg.Transit, log)

	var publisher tramway.MessagePublisher
	if cfg.MQTT.Broker != "" {
		mqttPublisher, err := mqttsink.NewPublisher(cfg.MQTT, log)
		if err != nil {
			log.Fatal("Failed to connect to MQTT broker", "broker", cfg.MQTT.Broker, "error", err)
		}
		defer mqttPublisher.Close()
		publisher = mqttPublisher
	} else {
		log.Warn("Display sink disabled (no MQTT broker configured)")
	}

	var stateWriter tramway.StateWriter
	if cfg.HomeAssistant.URL != "" {
		stateWriter = homeassistant.NewClient(cfg.HomeAssistant)
	} else {
		log.Warn("State sink disabled (no Home Assistant URL configured)")
	}

	updater := tramway.NewUpdater(cfg, lines, stopTimesFetcher, publisher, stateWriter, log)
	scheduler := tramway.NewScheduler(updater, cfg.Transit.UpdateInterval, log)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := scheduler.Start(ctx); err != nil {
			log.Error("Scheduler error", "error", err)
		}
	}()

	<-sigChan
	log.Info("Shutdown signal received")

	cancel()
	wg.Wait()

	log.Info("next-tramway stopped")
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/learntoride/ltr/internal"
	"github.com/learntoride/ltr/pkg/logger"
)

var log = logger.Get("Main")

// main loads the user configuration and runs the server until it is
// interrupted or crashes.
func main() {
	configPath := flag.String("config", "ltr.toml", "path to the TOML configuration file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetMinLoggingLevel(logger.DEBUG.Level())
	}

	config := internal.LtrConfig{}
	if _, err := os.Stat(*configPath); err == nil {
		if err := config.LoadFromFile(*configPath); err != nil {
			log.Fatalf("%v\n", err)
			return
		}
	} else if err := config.LoadFromEnv(); err != nil {
		log.Fatalf("%v\n", err)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := internal.New(config).Run(ctx); err != nil {
		log.Fatalf("Server stopped due to error: %v\n", err)
	}
}

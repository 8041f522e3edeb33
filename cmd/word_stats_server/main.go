// Command word_stats_server runs the word statistics HTTP service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-word-stats/api"
	"github.com/gcbaptista/go-word-stats/config"
	"github.com/gcbaptista/go-word-stats/internal/engine"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		configFile = flag.String("config", "", "Path to a config file (optional)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Word Stats Server - word frequency analysis over HTTP\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nSettings can also be provided via WORD_STATS_* environment variables,\n")
		fmt.Printf("e.g. WORD_STATS_ADDR=:9000 %s\n", os.Args[0])
		return
	}

	settings, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	log.Printf("Using data directory: %s", settings.DataDir)
	analysisEngine := engine.NewEngine(settings)
	defer analysisEngine.Close()

	router := gin.Default()
	router.Use(api.RequestSizeLimitMiddleware(settings.MaxRequestBytes))
	router.Use(api.CORSMiddleware())

	api.SetupRoutes(router, analysisEngine, settings.DefaultTopN)

	log.Printf("Starting server on %s...", settings.Addr)
	if err := router.Run(settings.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

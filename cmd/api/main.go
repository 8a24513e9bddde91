package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openarisan/arisan-chain/api"
)

func main() {
	// Command line flags
	host := flag.String("host", "0.0.0.0", "Server host")
	port := flag.Int("port", 8080, "Server port")
	drawInterval := flag.Duration("draw-interval", 30*time.Second, "Interval between simulated lottery draws")
	benchMode := flag.Bool("bench", false, "Enable benchmark mode (no rate limiting)")
	flag.Parse()

	// Create configuration
	config := &api.Config{
		Host:             *host,
		Port:             *port,
		ReadTimeout:      30 * time.Second,
		WriteTimeout:     30 * time.Second,
		MockMode:         true,
		DrawInterval:     *drawInterval,
		DisableRateLimit: *benchMode,
	}
	if *benchMode {
		log.Println("Benchmark mode: Rate limiting disabled")
	}

	server := api.NewServer(config)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Arisan API server started on %s:%d", *host, *port)
	log.Printf("WebSocket endpoint: ws://%s:%d/ws", *host, *port)
	log.Printf("Health check: http://%s:%d/health", *host, *port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server exited")
}

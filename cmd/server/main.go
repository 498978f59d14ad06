package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grabctl/pkg/config"
	"grabctl/pkg/downloads"
	"grabctl/pkg/server"
	"grabctl/pkg/sweeper"

	"github.com/lrstanley/go-ytdlp"
)

// version is set at build time using -ldflags "-X main.version=1.0.0"
var version string = "unknown"

// @title grabctl API
// @version 1.0
// @description grabctl is a self-hosted server for downloading media from remote video hosting URLs.
// @license.name MIT License
// @license.url https://opensource.org/license/mit/
// @basePath /api/v1
func main() {

	// --version flag to print the version
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("grabctl version: %s\n", version)
		return
	}

	configPath := os.Getenv("GRABCTL_CONFIG_PATH")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		fmt.Println("Using default configuration.")
	}
	cfg.Version = version

	// Create the download directory if it doesn't exist
	if cfg.Downloads.AutoCreateDirs {
		if err := os.MkdirAll(cfg.Downloads.Dir, 0755); err != nil {
			fmt.Printf("Error creating download directory %s: %v\n", cfg.Downloads.Dir, err)
		}
	}

	// Make sure a yt-dlp binary is available, downloading one if needed.
	installCtx, cancelInstall := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := ytdlp.Install(installCtx, nil); err != nil {
		fmt.Printf("Warning: could not provision yt-dlp: %v\n", err)
		fmt.Println("Downloads will fail until yt-dlp is on the PATH.")
	}
	cancelInstall()

	// Initialize the download manager
	downloadManager := downloads.NewManager(cfg.Downloads)

	// Start the retention sweeper
	var retention *sweeper.Sweeper
	if cfg.Retention.Enabled {
		retention = sweeper.New(
			cfg.Downloads.Dir,
			time.Duration(cfg.Retention.SweepIntervalSeconds)*time.Second,
			time.Duration(cfg.Retention.MaxFileAgeSeconds)*time.Second,
		)
		retention.Start()
	}

	// Create a new handler with the download manager
	handler := server.NewHandler(downloadManager, cfg)

	// Setup the router with the handler
	r := server.SetupRouter(handler)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r,
	}

	go func() {
		fmt.Printf("Grabctl server listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("Downloads will be saved to: %s\n", cfg.Downloads.Dir)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Error starting server: %v\n", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	fmt.Println("Shutting down server...")

	if err := httpServer.Close(); err != nil {
		fmt.Printf("Error shutting down server: %v\n", err)
	} else {
		fmt.Println("Server shut down gracefully.")
	}

	// Stop background work
	if retention != nil {
		retention.Stop()
	}
	downloadManager.Close()

	fmt.Println("Exiting grabctl.")
}

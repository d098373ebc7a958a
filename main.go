package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/soar/padbridge/internal/config"
	"github.com/soar/padbridge/internal/hub"
	"github.com/soar/padbridge/internal/physical"
	"github.com/soar/padbridge/internal/server"
	"github.com/soar/padbridge/internal/tray"
	"github.com/soar/padbridge/internal/virtual"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	configPath := pflag.StringP("config", "c", "padbridge.yaml", "configuration file path")
	listenAddr := pflag.StringP("listen", "l", "", "monitor listen address (overrides config)")
	noTray := pflag.Bool("no-tray", false, "disable the system tray")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	deviceMap, err := cfg.BuildDeviceMap()
	if err != nil {
		log.Fatalf("Device map error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Physical layer: SDL event loop feeding the per-controller states
	source := physical.NewSDLSource(cfg.Properties.CircleToSquarePercent)
	sourceDone := make(chan struct{})
	go func() {
		source.Run(ctx)
		close(sourceDone)
	}()

	registry := &physical.ForceFeedbackRegistry{}

	// One virtual controller per physical slot
	controllers := make([]*virtual.Controller, physical.MaxControllers)
	for i := range controllers {
		vc := virtual.New(physical.ControllerID(i), deviceMap, source, registry)
		cfg.Apply(vc)
		controllers[i] = vc
	}
	defer func() {
		for _, vc := range controllers {
			vc.Close()
		}
	}()

	// Monitor: hub, broadcaster, HTTP server
	h := hub.NewHub()
	broadcaster := hub.NewBroadcaster(h, controllers)
	go broadcaster.Run(ctx)

	srv := server.New(h, broadcaster, cfg.ListenAddr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	monitorURL := "http://localhost" + cfg.ListenAddr
	log.Printf("padbridge started: %s", monitorURL)

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Initialize system tray on Windows only
	if runtime.GOOS == "windows" && !*noTray {
		go func() {
			t := tray.New(monitorURL, func() {
				close(shutdownRequested)
			})
			t.Run(nil)
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// Wait for shutdown signal, tray request, or server error
	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	// Wait for the SDL loop to finish
	<-sourceDone

	// Shutdown the HTTP server gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("padbridge stopped")
}

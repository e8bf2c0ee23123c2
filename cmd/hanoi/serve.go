package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/adapters/file"
	httpAdapter "github.com/aretw0/hanoi/pkg/adapters/http"
	"github.com/aretw0/hanoi/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/hanoi/pkg/adapters/redis"
	"github.com/aretw0/hanoi/pkg/ports"
)

// serveCmd starts the HTTP boundary for external front-ends.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the engine in server mode, exposing sessions, traces and the manual-move path as a JSON API. Sessions live in memory unless --redis points at a Redis instance.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		sessionDir, _ := cmd.Flags().GetString("sessions-dir")
		ttl, _ := cmd.Flags().GetDuration("session-ttl")

		logger := logging.New(slog.LevelInfo)

		var store ports.SessionStore
		switch {
		case redisAddr != "":
			store = redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(ttl))
			logger.Info("using redis session store", "addr", redisAddr, "ttl", ttl)
		case sessionDir != "":
			store = file.New(sessionDir)
			logger.Info("using file session store", "dir", sessionDir)
		default:
			store = memory.NewStore()
			logger.Info("using in-memory session store")
		}

		handler := httpAdapter.NewHandler(store,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(prometheus.NewRegistry()),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Hanoi Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Hanoi Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for shared session storage (host:port)")
	serveCmd.Flags().String("sessions-dir", "", "Directory for file-backed session storage")
	serveCmd.Flags().Duration("session-ttl", 24*time.Hour, "Session expiry when using Redis")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/api"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/config"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/simulate"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/store"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/ws"
)

// rescoreEvery is how many ticks pass between health re-computations over
// the retained history window.
const rescoreEvery = 10

// serveCmd runs the simulator continuously and exposes the live state over
// HTTP and WebSocket.
func serveCmd() *cobra.Command {
	var (
		scenarioName string
		seed         int64
		port         int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the twin live and serve telemetry over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.HTTPPort = port
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			sc, err := telemetry.ParseScenario(scenarioName)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			slog.Info("cartwin serving",
				"scenario", sc,
				"vehicle_id", cfg.Simulation.VehicleID,
				"tick", cfg.Simulation.TickInterval,
				"http_port", cfg.Server.HTTPPort,
			)

			gen := simulate.New(simulationParams(cfg), seed)
			if err := gen.Reset(sc); err != nil {
				return err
			}

			st := store.New(cfg.Server.HistorySize)
			apiHandler := api.New(st, cfg.Simulation.VehicleID, cfg.Maintenance.Items)

			// Hot reload: the watcher delivers noise and maintenance tuning
			// on updates; structural fields need a restart.
			updates := make(chan config.Reloadable, 1)
			go func() {
				if err := config.Watch(ctx, configPath, cfg, updates); err != nil {
					slog.Error("config watcher stopped", "err", err)
				}
			}()

			// WebSocket hub - broadcasts the latest reading to clients.
			hub := ws.New(st, cfg.Server.BroadcastInterval)
			go hub.Run(ctx)

			// Simulation loop: one snapshot per tick, periodic re-scoring.
			// Reloaded tuning is applied here so the generator stays owned by
			// a single goroutine.
			go func() {
				ticker := time.NewTicker(cfg.Simulation.TickInterval)
				defer ticker.Stop()
				ticks := 0
				for {
					select {
					case <-ctx.Done():
						return
					case r := <-updates:
						gen.SetNoise(noiseParams(r.Noise))
						apiHandler.SetSchedule(r.Maintenance)
						slog.Info("tuning applied",
							"noise_rpm", r.Noise.RPM,
							"maintenance_items", len(r.Maintenance))
					case <-ticker.C:
						snap := gen.Step()
						st.Put(snap)
						ticks++
						if ticks%rescoreEvery == 0 {
							rep, err := health.Score(st.History())
							if err != nil {
								slog.Warn("re-score failed", "err", err)
								continue
							}
							st.SetReport(rep)
							slog.Debug("health re-scored",
								"overall", rep.Overall, "state", rep.State)
						}
					}
				}
			}()

			httpMux := http.NewServeMux()
			httpMux.Handle("/api/", apiHandler)
			httpMux.Handle("/metrics", apiHandler)
			httpMux.Handle("/ws/stream", hub)

			httpSrv := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
				Handler: httpMux,
			}
			go func() {
				slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
				if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server stopped", "err", err)
				}
			}()

			<-ctx.Done()
			slog.Info("cartwin shutting down")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return httpSrv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "cruise", "driving scenario to run continuously")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&port, "port", 0, "HTTP port override")

	return cmd
}

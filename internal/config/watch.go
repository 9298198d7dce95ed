package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
)

// Reloadable holds the config sections that may be applied to a running twin
// without a restart: noise tuning and the maintenance schedule. Structural
// fields (vehicle id, tick interval, ports, history size) keep their boot
// values; Watch logs when a rewrite touches one.
type Reloadable struct {
	Noise       NoiseConfig
	Maintenance []health.ServiceItem
}

// reloadable extracts the live-tunable sections from a full config tree.
func (c *Config) reloadable() Reloadable {
	return Reloadable{
		Noise:       c.Simulation.Noise,
		Maintenance: c.Maintenance.Items,
	}
}

// structuralChange names the first restart-only field that differs between
// the running config and a freshly loaded one.
func structuralChange(cur, next *Config) (string, bool) {
	switch {
	case cur.Simulation.VehicleID != next.Simulation.VehicleID:
		return "simulation.vehicle_id", true
	case cur.Simulation.TickInterval != next.Simulation.TickInterval:
		return "simulation.tick_interval", true
	case cur.Simulation.AmbientTempC != next.Simulation.AmbientTempC:
		return "simulation.ambient_temp_c", true
	case cur.Server.HTTPPort != next.Server.HTTPPort:
		return "server.http_port", true
	case cur.Server.BroadcastInterval != next.Server.BroadcastInterval:
		return "server.broadcast_interval", true
	case cur.Server.HistorySize != next.Server.HistorySize:
		return "server.history_size", true
	}
	return "", false
}

// Watch monitors path and delivers the reload-safe sections of every valid
// rewrite on updates. boot is the config the process started with; rewrites
// that change a restart-only field still deliver their tunable sections, but
// the ignored field is logged. If a reload fails (e.g., invalid YAML) the
// file is skipped and the previous values stay active. Runs until ctx is
// cancelled.
func Watch(ctx context.Context, path string, boot *Config, updates chan<- Reloadable) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	slog.Info("config: watching for live tuning changes", "path", path)

	cur := boot
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only reload on write or create events. Editors often write via
			// rename (atomic save), so also catch fsnotify.Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				slog.Error("config: reload failed, keeping previous values",
					"path", path, "err", err)
				continue
			}

			if field, changed := structuralChange(cur, cfg); changed {
				slog.Warn("config: field needs a restart to take effect",
					"field", field)
			}
			cur = cfg

			select {
			case updates <- cfg.reloadable():
				slog.Info("config: live tuning reloaded", "path", path)
			case <-ctx.Done():
				return nil
			}

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

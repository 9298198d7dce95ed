// Package config loads the simulator configuration file (config.yaml).
//
// Top-level types:
//   - Config{Simulation, Maintenance, Server} — full config tree parsed
//     from YAML
//   - SimulationConfig — vehicle_id, ambient_temp_c, initial_mileage_km,
//     tick_interval, per-field noise amplitudes
//   - MaintenanceConfig — service schedule items (name, interval_km,
//     last_service_km)
//   - ServerConfig — live-mode http_port, broadcast_interval, history_size
//
// Load(path) reads the YAML file, applies defaults (vehicle TEST_VEHICLE_001,
// 1s tick, port 8080, 600-snapshot history, stock service schedule), then
// validates field constraints. Default() returns the fully-defaulted tree
// for callers running without a config file.
//
// Watch(ctx, path, boot, updates) uses fsnotify to detect file changes and
// delivers the Reloadable sections (noise tuning and the maintenance
// schedule) of each valid rewrite on updates. Restart-only fields are logged
// and kept at their boot values. It handles the rename→create pattern used
// by atomic-save editors by re-adding the watch after a rename event.
package config

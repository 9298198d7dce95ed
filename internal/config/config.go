package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultVehicleID         = "TEST_VEHICLE_001"
	DefaultAmbientTempC      = 25.0
	DefaultInitialMileageKM  = 45230.0
	DefaultTickInterval      = time.Second
	DefaultHTTPPort          = 8080
	DefaultBroadcastInterval = time.Second
	DefaultHistorySize       = 600
)

// Config is the top-level configuration tree. Fields map 1:1 to
// config.example.yaml.
type Config struct {
	Simulation  SimulationConfig  `yaml:"simulation"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Server      ServerConfig      `yaml:"server"`
}

// SimulationConfig tunes the generator.
type SimulationConfig struct {
	// VehicleID labels exported documents and API payloads.
	VehicleID string `yaml:"vehicle_id"`

	// AmbientTempC is the outside air temperature feeding the intake model.
	AmbientTempC float64 `yaml:"ambient_temp_c"`

	// InitialMileageKM is the odometer reading at the start of a run;
	// simulated distance accumulates on top of it.
	InitialMileageKM float64 `yaml:"initial_mileage_km"`

	// TickInterval is the simulated (and, in live mode, wall-clock) time
	// between snapshots.
	TickInterval time.Duration `yaml:"tick_interval"`

	// Noise sets per-field uniform noise amplitudes.
	Noise NoiseConfig `yaml:"noise"`
}

// NoiseConfig holds the per-field noise amplitudes. Zero disables noise for
// that field; omitted fields take the documented defaults.
type NoiseConfig struct {
	RPM            float64 `yaml:"rpm"`
	SpeedKPH       float64 `yaml:"speed_kph"`
	EngineLoadPct  float64 `yaml:"engine_load_pct"`
	CoolantTempC   float64 `yaml:"coolant_temp_c"`
	OilTempC       float64 `yaml:"oil_temp_c"`
	OilPressureKPa float64 `yaml:"oil_pressure_kpa"`
	FuelRateLPH    float64 `yaml:"fuel_rate_lph"`
	ThrottlePct    float64 `yaml:"throttle_pct"`
	IntakeTempC    float64 `yaml:"intake_temp_c"`
	MAFGPS         float64 `yaml:"maf_gps"`
}

// MaintenanceConfig overrides the stock service schedule.
type MaintenanceConfig struct {
	Items []health.ServiceItem `yaml:"items"`
}

// ServerConfig holds live-mode settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API and WebSocket hub listen on.
	HTTPPort int `yaml:"http_port"`

	// BroadcastInterval controls how often the WebSocket hub pushes the
	// current snapshot to connected clients.
	BroadcastInterval time.Duration `yaml:"broadcast_interval"`

	// HistorySize is the number of recent snapshots kept for /api/v1/series
	// and periodic re-scoring.
	HistorySize int `yaml:"history_size"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config pre-populated with all default values, including
// the stock maintenance schedule and noise amplitudes.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			VehicleID:        DefaultVehicleID,
			AmbientTempC:     DefaultAmbientTempC,
			InitialMileageKM: DefaultInitialMileageKM,
			TickInterval:     DefaultTickInterval,
			Noise: NoiseConfig{
				RPM:            50,
				SpeedKPH:       2,
				EngineLoadPct:  2,
				CoolantTempC:   1,
				OilTempC:       1,
				OilPressureKPa: 14,
				FuelRateLPH:    0.1,
				ThrottlePct:    1,
				IntakeTempC:    0.5,
				MAFGPS:         0.5,
			},
		},
		Maintenance: MaintenanceConfig{
			Items: health.DefaultSchedule(),
		},
		Server: ServerConfig{
			HTTPPort:          DefaultHTTPPort,
			BroadcastInterval: DefaultBroadcastInterval,
			HistorySize:       DefaultHistorySize,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Simulation.VehicleID == "" {
		return fmt.Errorf("simulation.vehicle_id is required")
	}
	if cfg.Simulation.InitialMileageKM < 0 {
		return fmt.Errorf("simulation.initial_mileage_km must not be negative")
	}
	if cfg.Simulation.TickInterval <= 0 {
		return fmt.Errorf("simulation.tick_interval must be positive")
	}
	for _, n := range []struct {
		name  string
		value float64
	}{
		{"rpm", cfg.Simulation.Noise.RPM},
		{"speed_kph", cfg.Simulation.Noise.SpeedKPH},
		{"engine_load_pct", cfg.Simulation.Noise.EngineLoadPct},
		{"coolant_temp_c", cfg.Simulation.Noise.CoolantTempC},
		{"oil_temp_c", cfg.Simulation.Noise.OilTempC},
		{"oil_pressure_kpa", cfg.Simulation.Noise.OilPressureKPa},
		{"fuel_rate_lph", cfg.Simulation.Noise.FuelRateLPH},
		{"throttle_pct", cfg.Simulation.Noise.ThrottlePct},
		{"intake_temp_c", cfg.Simulation.Noise.IntakeTempC},
		{"maf_gps", cfg.Simulation.Noise.MAFGPS},
	} {
		if n.value < 0 {
			return fmt.Errorf("simulation.noise.%s must not be negative", n.name)
		}
	}
	for i, item := range cfg.Maintenance.Items {
		if item.Name == "" {
			return fmt.Errorf("maintenance.items[%d]: name is required", i)
		}
		if item.IntervalKM <= 0 {
			return fmt.Errorf("maintenance.items[%d] %q: interval_km must be positive", i, item.Name)
		}
		if item.LastServiceKM < 0 {
			return fmt.Errorf("maintenance.items[%d] %q: last_service_km must not be negative", i, item.Name)
		}
	}
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535]")
	}
	if cfg.Server.BroadcastInterval <= 0 {
		return fmt.Errorf("server.broadcast_interval must be positive")
	}
	if cfg.Server.HistorySize <= 0 {
		return fmt.Errorf("server.history_size must be positive")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// loadFromString writes yaml to a temp file and loads it, failing the test
// on error.
func loadFromString(t *testing.T, yaml string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, yaml)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and returns Load's result.
func loadStringErr(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}

func TestLoad_Valid(t *testing.T) {
	yaml := `
simulation:
  vehicle_id: "GT-86"
  ambient_temp_c: 18
  initial_mileage_km: 120000
  tick_interval: 500ms
  noise:
    rpm: 25
server:
  http_port: 9090
  broadcast_interval: 2s
  history_size: 100
`
	cfg := loadFromString(t, yaml)

	if cfg.Simulation.VehicleID != "GT-86" {
		t.Errorf("vehicle_id: got %q", cfg.Simulation.VehicleID)
	}
	if cfg.Simulation.AmbientTempC != 18 {
		t.Errorf("ambient_temp_c: got %v", cfg.Simulation.AmbientTempC)
	}
	if cfg.Simulation.TickInterval != 500*time.Millisecond {
		t.Errorf("tick_interval: got %v", cfg.Simulation.TickInterval)
	}
	if cfg.Simulation.Noise.RPM != 25 {
		t.Errorf("noise.rpm: got %v", cfg.Simulation.Noise.RPM)
	}
	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("http_port: got %d", cfg.Server.HTTPPort)
	}
	if cfg.Server.HistorySize != 100 {
		t.Errorf("history_size: got %d", cfg.Server.HistorySize)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "simulation:\n  vehicle_id: X\n")

	if cfg.Simulation.TickInterval != DefaultTickInterval {
		t.Errorf("default tick_interval: got %v, want %v", cfg.Simulation.TickInterval, DefaultTickInterval)
	}
	if cfg.Simulation.AmbientTempC != DefaultAmbientTempC {
		t.Errorf("default ambient_temp_c: got %v, want %v", cfg.Simulation.AmbientTempC, DefaultAmbientTempC)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("default http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.HistorySize != DefaultHistorySize {
		t.Errorf("default history_size: got %d, want %d", cfg.Server.HistorySize, DefaultHistorySize)
	}
	if len(cfg.Maintenance.Items) == 0 {
		t.Error("default maintenance schedule is empty")
	}
}

func TestLoad_MaintenanceOverride(t *testing.T) {
	yaml := `
maintenance:
  items:
    - name: oil_change
      interval_km: 10000
      last_service_km: 5000
`
	cfg := loadFromString(t, yaml)
	if len(cfg.Maintenance.Items) != 1 {
		t.Fatalf("items: got %d, want 1", len(cfg.Maintenance.Items))
	}
	if cfg.Maintenance.Items[0].IntervalKM != 10000 {
		t.Errorf("interval_km: got %v", cfg.Maintenance.Items[0].IntervalKM)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "negative mileage",
			yaml: "simulation:\n  initial_mileage_km: -5\n",
			want: "initial_mileage_km",
		},
		{
			name: "zero tick interval",
			yaml: "simulation:\n  tick_interval: 0s\n",
			want: "tick_interval",
		},
		{
			name: "negative noise",
			yaml: "simulation:\n  noise:\n    rpm: -1\n",
			want: "noise.rpm",
		},
		{
			name: "bad port",
			yaml: "server:\n  http_port: 70000\n",
			want: "http_port",
		},
		{
			name: "zero maintenance interval",
			yaml: "maintenance:\n  items:\n    - name: oil_change\n      interval_km: 0\n",
			want: "interval_km",
		},
		{
			name: "nameless maintenance item",
			yaml: "maintenance:\n  items:\n    - interval_km: 5000\n",
			want: "name is required",
		},
		{
			name: "not yaml",
			yaml: "{{{",
			want: "parse yaml",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadStringErr(t, tc.yaml)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := validate(Default()); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

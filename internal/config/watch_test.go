package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeConfig (re)writes the watched file, failing the test on error.
func writeConfig(t *testing.T, path, yaml string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// startWatch loads the boot config from path and starts Watch on it,
// returning the updates channel.
func startWatch(t *testing.T, path string) <-chan Reloadable {
	t.Helper()

	boot, err := Load(path)
	if err != nil {
		t.Fatalf("Load boot config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	updates := make(chan Reloadable, 1)
	go func() {
		if err := Watch(ctx, path, boot, updates); err != nil {
			t.Errorf("Watch: %v", err)
		}
	}()

	// Give the watcher a moment to attach before the first rewrite.
	time.Sleep(100 * time.Millisecond)
	return updates
}

func awaitUpdate(t *testing.T, updates <-chan Reloadable) Reloadable {
	t.Helper()
	select {
	case r := <-updates:
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
		return Reloadable{}
	}
}

func TestWatch_DeliversTuningChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "simulation:\n  noise:\n    rpm: 50\n")
	updates := startWatch(t, path)

	writeConfig(t, path, `
simulation:
  noise:
    rpm: 5
maintenance:
  items:
    - name: oil_change
      interval_km: 10000
      last_service_km: 5000
`)

	r := awaitUpdate(t, updates)
	if r.Noise.RPM != 5 {
		t.Errorf("Noise.RPM = %v, want 5", r.Noise.RPM)
	}
	if len(r.Maintenance) != 1 || r.Maintenance[0].IntervalKM != 10000 {
		t.Errorf("Maintenance = %+v, want the rewritten single item", r.Maintenance)
	}
}

func TestWatch_SkipsInvalidRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "simulation:\n  noise:\n    rpm: 50\n")
	updates := startWatch(t, path)

	writeConfig(t, path, "{{{")
	select {
	case r := <-updates:
		t.Fatalf("invalid rewrite delivered an update: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}

	// A subsequent valid rewrite still comes through.
	writeConfig(t, path, "simulation:\n  noise:\n    rpm: 7\n")
	if r := awaitUpdate(t, updates); r.Noise.RPM != 7 {
		t.Errorf("Noise.RPM = %v, want 7 after recovery", r.Noise.RPM)
	}
}

func TestStructuralChange(t *testing.T) {
	a := Default()
	b := Default()
	if field, changed := structuralChange(a, b); changed {
		t.Fatalf("identical configs reported %q as changed", field)
	}

	b.Server.HTTPPort = 9999
	field, changed := structuralChange(a, b)
	if !changed || field != "server.http_port" {
		t.Errorf("got (%q, %v), want (server.http_port, true)", field, changed)
	}

	// Tunable sections never count as structural.
	c := Default()
	c.Simulation.Noise.RPM = 0
	c.Maintenance.Items = nil
	if field, changed := structuralChange(a, c); changed {
		t.Errorf("tunable-only change reported %q as structural", field)
	}
}

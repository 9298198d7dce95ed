package telemetry

import (
	"errors"
	"testing"
)

func TestParseScenario_Valid(t *testing.T) {
	for _, s := range []string{"idle", "acceleration", "cruise", "stress"} {
		sc, err := ParseScenario(s)
		if err != nil {
			t.Errorf("ParseScenario(%q): unexpected error %v", s, err)
		}
		if string(sc) != s {
			t.Errorf("ParseScenario(%q) = %q", s, sc)
		}
	}
}

func TestParseScenario_Unknown(t *testing.T) {
	for _, s := range []string{"", "drift", "IDLE", "Cruise "} {
		_, err := ParseScenario(s)
		if err == nil {
			t.Errorf("ParseScenario(%q): expected error", s)
			continue
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseScenario(%q): error %v is not ErrInvalidInput", s, err)
		}
	}
}

func TestRange_Clamp(t *testing.T) {
	r := Range{Min: 10, Max: 20}
	tests := []struct{ in, want float64 }{
		{5, 10}, {10, 10}, {15, 15}, {20, 20}, {25, 20},
	}
	for _, tc := range tests {
		if got := r.Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%.0f) = %.0f, want %.0f", tc.in, got, tc.want)
		}
	}
}

func TestSnapshot_Validate(t *testing.T) {
	good := Snapshot{
		RPM:            800,
		SpeedKPH:       0,
		EngineLoadPct:  3,
		CoolantTempC:   85,
		OilTempC:       80,
		OilPressureKPa: 180,
		FuelRateLPH:    0.8,
		ThrottlePct:    0,
		IntakeTempC:    25,
		MAFGPS:         3,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate on in-bounds snapshot: %v", err)
	}

	bad := good
	bad.CoolantTempC = 200
	if err := bad.Validate(); err == nil {
		t.Fatal("Validate: expected error for coolant_temp_c = 200")
	}
}

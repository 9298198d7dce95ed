// Package export writes the combined run output — series, health report,
// maintenance estimate, run metadata — as a single JSON document.
//
// Snapshot fields carry their unit in the name (speed_kph, coolant_temp_c,
// oil_pressure_kpa, fuel_rate_lph, maf_gps); scores are 0–100; distances are
// kilometres. These names are stable so downstream consumers can parse
// deterministically.
package export

package health

import (
	"fmt"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// wearFactor shrinks remaining service distance when overall health is
// critical — a stressed engine reaches its next service sooner.
const wearFactor = 0.8

// dueSoonFraction flags an item once less than this fraction of its
// interval remains.
const dueSoonFraction = 0.2

// ServiceItem is one entry in the maintenance schedule: how often the
// service is due and the odometer reading at its last completion.
type ServiceItem struct {
	Name          string  `json:"name" yaml:"name"`
	IntervalKM    float64 `json:"interval_km" yaml:"interval_km"`
	LastServiceKM float64 `json:"last_service_km" yaml:"last_service_km"`
}

// DefaultSchedule returns the stock service schedule.
func DefaultSchedule() []ServiceItem {
	return []ServiceItem{
		{Name: "oil_change", IntervalKM: 5000, LastServiceKM: 43000},
		{Name: "spark_plugs", IntervalKM: 50000, LastServiceKM: 30000},
		{Name: "air_filter", IntervalKM: 20000, LastServiceKM: 40000},
		{Name: "coolant_flush", IntervalKM: 40000, LastServiceKM: 35000},
		{Name: "timing_belt", IntervalKM: 100000, LastServiceKM: 50000},
	}
}

// ItemEstimate is the per-item projection. A negative RemainingKM means the
// service is overdue by that distance.
type ItemEstimate struct {
	Name        string  `json:"name"`
	IntervalKM  float64 `json:"interval_km"`
	RemainingKM float64 `json:"remaining_km"`
	DueSoon     bool    `json:"due_soon"`
}

// Estimate is the full maintenance projection for one odometer reading.
type Estimate struct {
	MileageKM      float64        `json:"mileage_km"`
	HealthAdjusted bool           `json:"health_adjusted"`
	NextDue        string         `json:"next_due"`
	NextDueKM      float64        `json:"next_due_km"`
	Items          []ItemEstimate `json:"items"`
}

// EstimateMaintenance projects the remaining distance to each scheduled
// service at the given odometer reading.
//
//	remaining = interval - (mileage - last_service)
//
// Remaining distance is monotonically non-increasing in mileage. When rep
// is non-nil and its overall score is below the degraded threshold, positive
// remainders shrink by wearFactor. Negative mileage is an input error; a nil
// or empty schedule falls back to DefaultSchedule.
func EstimateMaintenance(mileageKM float64, rep *Report, schedule []ServiceItem) (Estimate, error) {
	if mileageKM < 0 {
		return Estimate{}, fmt.Errorf("%w: negative mileage %.1f", telemetry.ErrInvalidInput, mileageKM)
	}
	if len(schedule) == 0 {
		schedule = DefaultSchedule()
	}

	adjusted := rep != nil && rep.Overall < ThresholdDegraded

	est := Estimate{
		MileageKM:      mileageKM,
		HealthAdjusted: adjusted,
		Items:          make([]ItemEstimate, 0, len(schedule)),
	}

	for i, item := range schedule {
		remaining := item.IntervalKM - (mileageKM - item.LastServiceKM)
		if adjusted && remaining > 0 {
			remaining *= wearFactor
		}
		est.Items = append(est.Items, ItemEstimate{
			Name:        item.Name,
			IntervalKM:  item.IntervalKM,
			RemainingKM: remaining,
			DueSoon:     remaining < item.IntervalKM*dueSoonFraction,
		})
		if i == 0 || remaining < est.NextDueKM {
			est.NextDue = item.Name
			est.NextDueKM = remaining
		}
	}
	return est, nil
}

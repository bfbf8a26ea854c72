package negotiation

import (
	"strings"
	"time"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/truckban"
)

// DeliveryInput is the raw delivery proposal as received from a client.
type DeliveryInput struct {
	ScheduledDate   string
	ScheduledTime   string
	Route           *string
	IsCBD           bool
	TruckWeightKg   *float64
	DeliveryAddress *string
}

// Parse validates the input and converts it into delivery fields.
func (in DeliveryInput) Parse() (domain.DeliveryFields, error) {
	date := strings.TrimSpace(in.ScheduledDate)
	if date == "" {
		return domain.DeliveryFields{}, apperr.Invalidf("scheduledDate is required")
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return domain.DeliveryFields{}, apperr.Invalidf("scheduledDate %q must be YYYY-MM-DD", date)
	}

	hhmm := strings.TrimSpace(in.ScheduledTime)
	if hhmm == "" {
		return domain.DeliveryFields{}, apperr.Invalidf("scheduledTime is required")
	}
	if !truckban.ValidClock(hhmm) {
		return domain.DeliveryFields{}, apperr.Invalidf("scheduledTime %q must be HH:mm", hhmm)
	}

	if in.TruckWeightKg != nil && *in.TruckWeightKg < 0 {
		return domain.DeliveryFields{}, apperr.Invalidf("truckWeightKg must not be negative")
	}

	return domain.DeliveryFields{
		ScheduledDate:   day,
		ScheduledTime:   hhmm,
		Route:           trimmed(in.Route),
		IsCBD:           in.IsCBD,
		TruckWeightKg:   in.TruckWeightKg,
		DeliveryAddress: trimmed(in.DeliveryAddress),
	}, nil
}

// RuleSchedule builds the rule engine input for delivery fields. A missing weight counts as zero.
func RuleSchedule(f domain.DeliveryFields) truckban.Schedule {
	s := truckban.Schedule{
		Date:  f.ScheduledDate.Format(time.DateOnly),
		Time:  f.ScheduledTime,
		IsCBD: f.IsCBD,
	}
	if f.Route != nil {
		s.Route = *f.Route
	}
	if f.TruckWeightKg != nil {
		s.TruckWeightKg = *f.TruckWeightKg
	}
	return s
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

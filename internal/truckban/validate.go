package truckban

import "fmt"

// Schedule is the input to Validate.
type Schedule struct {
	Date          string
	Time          string
	Route         string
	IsCBD         bool
	TruckWeightKg float64
	IsExempt      bool
	ExemptionType ExemptionType
}

// Result is the outcome of validating a schedule. Warnings never affect IsValid.
type Result struct {
	IsValid     bool     `json:"isValid"`
	Violations  []string `json:"violations"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func newResult() Result {
	return Result{Violations: []string{}, Warnings: []string{}, Suggestions: []string{}}
}

// Validate checks a schedule against the ban tables. The only error it returns
// is a malformed time on a schedule that is subject to the ban.
//
// IsExempt bypasses the ban only when ExemptionType is one of the recognized
// categories. An empty or unknown type adds a warning and the ban still applies.
func (e *Engine) Validate(s Schedule) (Result, error) {
	res := newResult()

	if !e.RequiresCompliance(s.TruckWeightKg) {
		res.IsValid = true
		return res, nil
	}

	if s.IsExempt {
		if s.ExemptionType.Valid() {
			res.IsValid = true
			res.Suggestions = append(res.Suggestions,
				fmt.Sprintf("Exemption applied: %s (%s); truck ban windows do not apply", s.ExemptionType.Label(), s.ExemptionType))
			return res, nil
		}
		res.Warnings = append(res.Warnings,
			"Exemption claimed without a recognized exemption type; truck ban windows still apply")
	}

	zone := ZoneFor(s.IsCBD)
	banned, err := e.IsInBanWindow(s.Time, zone)
	if err != nil {
		return Result{}, err
	}
	if banned {
		res.Violations = append(res.Violations,
			fmt.Sprintf("Delivery at %s falls within the truck ban for %s", FormatTime(s.Time), zone.Label()))
		res.Suggestions = append(res.Suggestions, e.allowedSuggestions(zone)...)
	}

	if s.Route != "" {
		if rs, ok := e.routes[normalizeRoute(s.Route)]; ok {
			t, _ := ParseClock(s.Time)
			if !rs.window.contains(t) {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("Route %s is preferred between %s and %s",
						rs.info.Name, FormatTime(rs.window.Start), FormatTime(rs.window.End)))
			}
		}
	}

	res.IsValid = len(res.Violations) == 0
	return res, nil
}

func (e *Engine) allowedSuggestions(zone Zone) []string {
	zs := e.zones[zone]
	out := make([]string, 0, len(zs.allowed))
	for _, s := range zs.allowed {
		if s.wraps() {
			out = append(out, fmt.Sprintf("Schedule the delivery overnight between %s and %s for %s",
				FormatTime(s.Start), FormatTime(s.End), zone.Label()))
			continue
		}
		out = append(out, fmt.Sprintf("Schedule the delivery between %s and %s for %s",
			FormatTime(s.Start), FormatTime(s.End), zone.Label()))
	}
	return out
}

package truckban

import "strings"

// Zone is an ordinance zone with its own ban table.
type Zone string

// List of zones
const (
	ZoneCBD        Zone = "CBD"
	ZoneOutsideCBD Zone = "OUTSIDE_CBD"
)

// ZoneFor picks the zone for a delivery destination.
func ZoneFor(isCBD bool) Zone {
	if isCBD {
		return ZoneCBD
	}
	return ZoneOutsideCBD
}

// ParseZone accepts the zone name case-insensitively.
func ParseZone(s string) (Zone, bool) {
	switch Zone(strings.ToUpper(strings.TrimSpace(s))) {
	case ZoneCBD:
		return ZoneCBD, true
	case ZoneOutsideCBD:
		return ZoneOutsideCBD, true
	default:
		return "", false
	}
}

// Label is the human readable zone name used in messages.
func (z Zone) Label() string {
	if z == ZoneCBD {
		return "the Central Business District (CBD)"
	}
	return "areas outside the CBD"
}

// Window is an HH:mm interval. End may be earlier than Start, in which case
// the window runs past midnight. Both ends belong to the window.
type Window struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	IsBanned bool   `json:"isBanned"`
}

// ZoneRules is the ban table for one zone.
type ZoneRules struct {
	Banned  []Window
	Allowed []Window
}

// RouteInfo is advisory metadata for a named route.
type RouteInfo struct {
	Name              string
	RecommendedWindow Window
	Endpoints         []string
}

// ExemptionType is an ordinance-recognized exemption category.
type ExemptionType string

// List of exemption types
const (
	ExemptionFireTruck      ExemptionType = "fire_truck"
	ExemptionPublicUtility  ExemptionType = "public_utility"
	ExemptionGovernment     ExemptionType = "government"
	ExemptionHeavyEquipment ExemptionType = "heavy_equipment"
	ExemptionEmergency      ExemptionType = "emergency"
)

var exemptionLabels = map[ExemptionType]string{
	ExemptionFireTruck:      "fire and water support vehicle",
	ExemptionPublicUtility:  "public utility repair vehicle",
	ExemptionGovernment:     "government vehicle",
	ExemptionHeavyEquipment: "on-site heavy equipment",
	ExemptionEmergency:      "emergency or calamity response vehicle",
}

// Valid checks if the ExemptionType is one of the recognized categories
func (e ExemptionType) Valid() bool {
	_, ok := exemptionLabels[e]
	return ok
}

// Label describes the exemption category.
func (e ExemptionType) Label() string {
	if l, ok := exemptionLabels[e]; ok {
		return l
	}
	return string(e)
}

// ExemptionTypes lists the recognized categories.
func ExemptionTypes() []ExemptionType {
	return []ExemptionType{
		ExemptionFireTruck,
		ExemptionPublicUtility,
		ExemptionGovernment,
		ExemptionHeavyEquipment,
		ExemptionEmergency,
	}
}

// Rules is the full ordinance configuration the engine evaluates.
type Rules struct {
	Zones map[Zone]ZoneRules
	// ComplianceThresholdKg is the gross vehicle weight from which ban windows apply.
	ComplianceThresholdKg float64
	Routes                []RouteInfo
	// Penalties is indexed by violation count minus one; the last entry repeats.
	Penalties []int
	// ImpoundFrom is the violation count from which the vehicle is also impounded.
	ImpoundFrom int
}

// DefaultRules returns the ordinance tables in force.
func DefaultRules() Rules {
	return Rules{
		Zones: map[Zone]ZoneRules{
			ZoneOutsideCBD: {
				Banned: []Window{
					{Start: "06:00", End: "09:00", IsBanned: true},
					{Start: "16:00", End: "21:00", IsBanned: true},
				},
				Allowed: []Window{
					{Start: "09:01", End: "15:59"},
				},
			},
			ZoneCBD: {
				Banned: []Window{
					{Start: "06:00", End: "21:00", IsBanned: true},
				},
				Allowed: []Window{
					{Start: "21:01", End: "05:59"},
				},
			},
		},
		ComplianceThresholdKg: 4500,
		Routes: []RouteInfo{
			{
				Name:              "EDSA",
				RecommendedWindow: Window{Start: "09:00", End: "15:59"},
				Endpoints:         []string{"Monumento", "Cubao", "Ortigas", "Guadalupe", "Magallanes", "Pasay Rotonda"},
			},
			{
				Name:              "C-5",
				RecommendedWindow: Window{Start: "09:00", End: "15:59"},
				Endpoints:         []string{"Commonwealth", "Katipunan", "Libis", "Pasig", "Bonifacio Global City", "SLEX"},
			},
		},
		Penalties:   []int{2000, 3000, 5000},
		ImpoundFrom: 4,
	}
}

package truckban

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"agrimarket-delivery/internal/apperr"
)

// fallbackWindowStart is returned when a zone has no allowed window configured.
const fallbackWindowStart = "09:00"

type span struct {
	Window
	start, end int
}

// contains applies the inclusive membership test, including the midnight wrap.
func (s span) contains(t int) bool {
	start, end := s.start, s.end
	if end < start {
		// The window crosses midnight: move its end into the next day, and
		// move early-morning times there too so they compare against it.
		end += minutesPerDay
		if t < start {
			t += minutesPerDay
		}
	}
	return start <= t && t <= end
}

func (s span) wraps() bool { return s.end < s.start }

type zoneSpans struct {
	banned  []span
	allowed []span
}

type routeSpan struct {
	info   RouteInfo
	window span
}

// Engine evaluates delivery schedules against a fixed set of ordinance rules.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	zones       map[Zone]zoneSpans
	threshold   float64
	routes      map[string]routeSpan
	penalties   []int
	impoundFrom int
}

// NewEngine compiles the rule tables. Malformed HH:mm values are rejected.
func NewEngine(r Rules) (*Engine, error) {
	e := &Engine{
		zones:       make(map[Zone]zoneSpans, len(r.Zones)),
		threshold:   r.ComplianceThresholdKg,
		routes:      make(map[string]routeSpan, len(r.Routes)),
		penalties:   append([]int(nil), r.Penalties...),
		impoundFrom: r.ImpoundFrom,
	}
	for zone, zr := range r.Zones {
		banned, err := compile(zr.Banned, true)
		if err != nil {
			return nil, fmt.Errorf("zone %s banned windows: %w", zone, err)
		}
		allowed, err := compile(zr.Allowed, false)
		if err != nil {
			return nil, fmt.Errorf("zone %s allowed windows: %w", zone, err)
		}
		sort.Slice(allowed, func(i, j int) bool { return allowed[i].start < allowed[j].start })
		e.zones[zone] = zoneSpans{banned: banned, allowed: allowed}
	}
	for _, ri := range r.Routes {
		w, err := compileOne(ri.RecommendedWindow, false)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", ri.Name, err)
		}
		e.routes[normalizeRoute(ri.Name)] = routeSpan{info: ri, window: w}
	}
	return e, nil
}

// Default returns an engine over DefaultRules.
func Default() *Engine {
	e, err := NewEngine(DefaultRules())
	if err != nil {
		panic(err)
	}
	return e
}

func compile(ws []Window, banned bool) ([]span, error) {
	out := make([]span, 0, len(ws))
	for _, w := range ws {
		s, err := compileOne(w, banned)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func compileOne(w Window, banned bool) (span, error) {
	start, err := ParseClock(w.Start)
	if err != nil {
		return span{}, err
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return span{}, err
	}
	w.IsBanned = banned
	return span{Window: w, start: start, end: end}, nil
}

// RequiresCompliance reports whether a vehicle of this gross weight is subject to ban windows.
func (e *Engine) RequiresCompliance(weightKg float64) bool {
	return weightKg >= e.threshold
}

// ComplianceThresholdKg is the weight from which ban windows apply.
func (e *Engine) ComplianceThresholdKg() float64 { return e.threshold }

// IsInBanWindow reports whether the HH:mm time falls inside any banned interval of the zone.
func (e *Engine) IsInBanWindow(hhmm string, zone Zone) (bool, error) {
	t, err := ParseClock(hhmm)
	if err != nil {
		return false, err
	}
	zs, ok := e.zones[zone]
	if !ok {
		return false, fmt.Errorf("unknown zone %q: %w", zone, apperr.ErrInvalid)
	}
	for _, s := range zs.banned {
		if s.contains(t) {
			return true, nil
		}
	}
	return false, nil
}

// Windows lists the zone's banned intervals followed by its allowed ones.
func (e *Engine) Windows(zone Zone) []Window {
	zs, ok := e.zones[zone]
	if !ok {
		return nil
	}
	out := make([]Window, 0, len(zs.banned)+len(zs.allowed))
	for _, s := range zs.banned {
		out = append(out, s.Window)
	}
	for _, s := range zs.allowed {
		out = append(out, s.Window)
	}
	return out
}

// NextAvailableWindow returns the start of the next allowed window that has not
// begun yet today at now. When every window has already started it returns the
// first one, which then refers to tomorrow.
func (e *Engine) NextAvailableWindow(zone Zone, now time.Time) string {
	zs, ok := e.zones[zone]
	if !ok || len(zs.allowed) == 0 {
		return fallbackWindowStart
	}
	current := now.Hour()*60 + now.Minute()
	for _, s := range zs.allowed {
		if s.start > current {
			return s.Start
		}
	}
	return zs.allowed[0].Start
}

// Route looks a route up by name, case-insensitively.
func (e *Engine) Route(name string) (RouteInfo, bool) {
	rs, ok := e.routes[normalizeRoute(name)]
	return rs.info, ok
}

func normalizeRoute(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Penalty is the fine in pesos for the given cumulative violation count.
func (e *Engine) Penalty(violations int) int {
	if violations <= 0 || len(e.penalties) == 0 {
		return 0
	}
	if violations > len(e.penalties) {
		return e.penalties[len(e.penalties)-1]
	}
	return e.penalties[violations-1]
}

// Impounds reports whether the vehicle is also impounded at this violation count.
func (e *Engine) Impounds(violations int) bool {
	return e.impoundFrom > 0 && violations >= e.impoundFrom
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/truckban"
)

// TruckBanHandler exposes the rule engine without touching any order.
type TruckBanHandler struct {
	rules  truckBanRules
	logger logx.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewTruckBanHandler evaluates "now" in loc, the timezone the ordinance is written in.
func NewTruckBanHandler(logger logx.Logger, rules truckBanRules, loc *time.Location) *TruckBanHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &TruckBanHandler{rules: rules, logger: logger, loc: loc, now: time.Now}
}

type windowDTO struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	IsBanned bool   `json:"isBanned"`
	Label    string `json:"label"`
}

type zoneWindowsDTO struct {
	Zone                     truckban.Zone `json:"zone"`
	Label                    string        `json:"label"`
	Windows                  []windowDTO   `json:"windows"`
	NextAvailableWindow      string        `json:"nextAvailableWindow"`
	NextAvailableWindowLabel string        `json:"nextAvailableWindowLabel"`
}

type windowsResponse struct {
	ComplianceThresholdKg float64          `json:"complianceThresholdKg"`
	Zones                 []zoneWindowsDTO `json:"zones"`
}

// Windows handles GET /truck-ban/windows?zone=. Without a zone every zone is listed.
func (h *TruckBanHandler) Windows(w http.ResponseWriter, r *http.Request) {
	zones := []truckban.Zone{truckban.ZoneCBD, truckban.ZoneOutsideCBD}
	if s := r.URL.Query().Get("zone"); s != "" {
		z, ok := truckban.ParseZone(s)
		if !ok {
			writeError(h.logger, w, r, http.StatusBadRequest, "zone must be CBD or OUTSIDE_CBD")
			return
		}
		zones = []truckban.Zone{z}
	}

	now := h.now().In(h.loc)
	resp := windowsResponse{
		ComplianceThresholdKg: h.rules.ComplianceThresholdKg(),
		Zones:                 make([]zoneWindowsDTO, 0, len(zones)),
	}
	for _, z := range zones {
		next := h.rules.NextAvailableWindow(z, now)
		ws := h.rules.Windows(z)
		dto := zoneWindowsDTO{
			Zone:                     z,
			Label:                    z.Label(),
			Windows:                  make([]windowDTO, len(ws)),
			NextAvailableWindow:      next,
			NextAvailableWindowLabel: truckban.FormatTime(next),
		}
		for i, win := range ws {
			dto.Windows[i] = windowDTO{
				Start:    win.Start,
				End:      win.End,
				IsBanned: win.IsBanned,
				Label:    truckban.FormatTime(win.Start) + " - " + truckban.FormatTime(win.End),
			}
		}
		resp.Zones = append(resp.Zones, dto)
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

type validateRequest struct {
	Date          string   `json:"date,omitempty"`
	Time          string   `json:"time"`
	Route         *string  `json:"route,omitempty"`
	IsCBD         bool     `json:"isCBD"`
	TruckWeightKg *float64 `json:"truckWeightKg,omitempty"`
	IsExempt      bool     `json:"isExempt"`
	ExemptionType *string  `json:"exemptionType,omitempty"`
}

func (req validateRequest) schedule() truckban.Schedule {
	s := truckban.Schedule{
		Date:     req.Date,
		Time:     strings.TrimSpace(req.Time),
		IsCBD:    req.IsCBD,
		IsExempt: req.IsExempt,
	}
	if req.Route != nil {
		s.Route = *req.Route
	}
	if req.TruckWeightKg != nil {
		s.TruckWeightKg = *req.TruckWeightKg
	}
	if req.ExemptionType != nil {
		s.ExemptionType = truckban.ExemptionType(strings.TrimSpace(*req.ExemptionType))
	}
	return s
}

// Validate handles POST /truck-ban/validate. It is advisory and stores nothing.
func (h *TruckBanHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.TruckWeightKg != nil && *req.TruckWeightKg < 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "truckWeightKg must not be negative")
		return
	}

	res, err := h.rules.Validate(req.schedule())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, res)
}

type penaltyResponse struct {
	Count    int    `json:"count"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Impound  bool   `json:"impound"`
}

// Penalty handles GET /truck-ban/penalty?count=.
func (h *TruckBanHandler) Penalty(w http.ResponseWriter, r *http.Request) {
	n, err := parseCount(r.URL.Query().Get("count"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, penaltyResponse{
		Count:    n,
		Amount:   h.rules.Penalty(n),
		Currency: "PHP",
		Impound:  h.rules.Impounds(n),
	})
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, errors.New("count is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("count must be a non-negative integer")
	}
	return n, nil
}

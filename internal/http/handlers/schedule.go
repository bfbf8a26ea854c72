package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/service/negotiation"
)

// ScheduleHandler serves the delivery schedule negotiation endpoints.
type ScheduleHandler struct {
	uc     scheduleUsecase
	logger logx.Logger
}

func NewScheduleHandler(logger logx.Logger, uc scheduleUsecase) *ScheduleHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ScheduleHandler{uc: uc, logger: logger}
}

// Propose handles POST /delivery-schedule.
func (h *ScheduleHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.OrderID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "orderId is required")
		return
	}

	s, err := h.uc.Propose(r.Context(), callerOf(r), negotiation.ProposeInput{
		OrderID:       req.OrderID,
		DeliveryInput: req.input(),
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/delivery-schedule/"+strconv.FormatInt(s.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, scheduleToDTO(s))
}

// Respond handles POST /delivery-schedule/{id}/confirm with action confirm or reject.
func (h *ScheduleHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req respondRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.uc.Respond(r.Context(), callerOf(r), negotiation.RespondInput{
		ScheduleID: id,
		Action:     domain.ScheduleAction(strings.ToLower(strings.TrimSpace(req.Action))),
		Notes:      req.Notes,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, scheduleToDTO(s))
}

// List handles GET /delivery-schedule?orderId=&status=.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f domain.ScheduleFilter

	if s := q.Get("orderId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid orderId")
			return
		}
		f.OrderID = &id
	}
	if s := q.Get("status"); s != "" {
		st := domain.ScheduleStatus(strings.ToLower(s))
		if !st.Valid() {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
			return
		}
		f.Status = &st
	}

	list, err := h.uc.List(r.Context(), callerOf(r), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, schedulesToDTO(list))
}

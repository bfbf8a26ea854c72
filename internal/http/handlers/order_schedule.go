package handlers

import (
	"net/http"

	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/service/orderschedule"
)

// OrderScheduleHandler serves the single-step scheduling endpoints on orders.
type OrderScheduleHandler struct {
	uc     orderScheduleUsecase
	logger logx.Logger
}

func NewOrderScheduleHandler(logger logx.Logger, uc orderScheduleUsecase) *OrderScheduleHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderScheduleHandler{uc: uc, logger: logger}
}

// Update handles PATCH /orders/{id}/schedule.
func (h *OrderScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req orderScheduleRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.ScheduleAndValidate(r.Context(), callerOf(r), id, orderschedule.ScheduleInput{
		DeliveryInput: req.input(),
		IsExempt:      req.IsExempt,
		ExemptionType: req.ExemptionType,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderScheduleResponse{
		Order:    orderScheduleToDTO(res.Order),
		Warnings: nonNil(res.Warnings),
	})
}

// Get handles GET /orders/{id}/schedule.
func (h *OrderScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	o, err := h.uc.Get(r.Context(), callerOf(r), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderScheduleToDTO(o))
}

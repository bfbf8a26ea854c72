package handlers

import (
	"time"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/service/negotiation"
)

type deliveryFieldsRequest struct {
	ScheduledDate   string   `json:"scheduledDate"`
	ScheduledTime   string   `json:"scheduledTime"`
	Route           *string  `json:"route,omitempty"`
	IsCBD           bool     `json:"isCBD"`
	TruckWeightKg   *float64 `json:"truckWeightKg,omitempty"`
	DeliveryAddress *string  `json:"deliveryAddress,omitempty"`
}

func (r deliveryFieldsRequest) input() negotiation.DeliveryInput {
	return negotiation.DeliveryInput{
		ScheduledDate:   r.ScheduledDate,
		ScheduledTime:   r.ScheduledTime,
		Route:           r.Route,
		IsCBD:           r.IsCBD,
		TruckWeightKg:   r.TruckWeightKg,
		DeliveryAddress: r.DeliveryAddress,
	}
}

type proposeRequest struct {
	OrderID int64 `json:"orderId"`
	deliveryFieldsRequest
	Notes *string `json:"notes,omitempty"`
}

type respondRequest struct {
	Action string  `json:"action"`
	Notes  *string `json:"notes,omitempty"`
}

type orderScheduleRequest struct {
	deliveryFieldsRequest
	IsExempt      bool    `json:"isExempt"`
	ExemptionType *string `json:"exemptionType,omitempty"`
}

type scheduleDTO struct {
	ID              int64                 `json:"id"`
	OrderID         int64                 `json:"orderId"`
	ScheduledDate   string                `json:"scheduledDate"`
	ScheduledTime   string                `json:"scheduledTime"`
	Route           *string               `json:"route"`
	IsCBD           bool                  `json:"isCBD"`
	TruckWeightKg   *float64              `json:"truckWeightKg"`
	DeliveryAddress *string               `json:"deliveryAddress"`
	Notes           *string               `json:"notes"`
	Status          domain.ScheduleStatus `json:"status"`
	ProposedBy      int64                 `json:"proposedBy"`
	ConfirmedBy     *int64                `json:"confirmedBy"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func scheduleToDTO(s *domain.DeliverySchedule) scheduleDTO {
	return scheduleDTO{
		ID:              s.ID,
		OrderID:         s.OrderID,
		ScheduledDate:   s.ScheduledDate.Format(time.DateOnly),
		ScheduledTime:   s.ScheduledTime,
		Route:           s.Route,
		IsCBD:           s.IsCBD,
		TruckWeightKg:   s.TruckWeightKg,
		DeliveryAddress: s.DeliveryAddress,
		Notes:           s.Notes,
		Status:          s.Status,
		ProposedBy:      s.ProposedBy,
		ConfirmedBy:     s.ConfirmedBy,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func schedulesToDTO(list []domain.DeliverySchedule) []scheduleDTO {
	out := make([]scheduleDTO, len(list))
	for i := range list {
		out[i] = scheduleToDTO(&list[i])
	}
	return out
}

type orderScheduleDTO struct {
	OrderID         int64              `json:"orderId"`
	Status          domain.OrderStatus `json:"status"`
	ScheduledDate   *string            `json:"scheduledDate"`
	ScheduledTime   *string            `json:"scheduledTime"`
	Route           *string            `json:"route"`
	IsCBD           bool               `json:"isCBD"`
	TruckWeightKg   *float64           `json:"truckWeightKg"`
	DeliveryAddress *string            `json:"deliveryAddress"`
	IsExempt        bool               `json:"isExempt"`
	ExemptionType   *string            `json:"exemptionType"`
}

func orderScheduleToDTO(o *domain.Order) orderScheduleDTO {
	dto := orderScheduleDTO{
		OrderID:         o.ID,
		Status:          o.Status,
		ScheduledTime:   o.ScheduledTime,
		Route:           o.Route,
		IsCBD:           o.IsCBD,
		TruckWeightKg:   o.TruckWeightKg,
		DeliveryAddress: o.DeliveryAddress,
		IsExempt:        o.IsExempt,
		ExemptionType:   o.ExemptionType,
	}
	if o.ScheduledDate != nil {
		d := o.ScheduledDate.Format(time.DateOnly)
		dto.ScheduledDate = &d
	}
	return dto
}

type orderScheduleResponse struct {
	Order    orderScheduleDTO `json:"order"`
	Warnings []string         `json:"warnings"`
}

package kafka

import (
	"strings"
	"time"

	"agrimarket-delivery/internal/domain"
)

// NotificationDTO is the wire form of a notification task.
type NotificationDTO struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"userId"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Link       string    `json:"link,omitempty"`
	OrderID    int64     `json:"orderId,omitempty"`
	ScheduleID int64     `json:"scheduleId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromDomain converts a task into its wire form.
func FromDomain(t domain.NotificationTask) NotificationDTO {
	return NotificationDTO{
		ID:         t.ID,
		UserID:     t.UserID,
		Type:       string(t.Type),
		Title:      t.Title,
		Message:    t.Message,
		Link:       t.Link,
		OrderID:    t.OrderID,
		ScheduleID: t.ScheduleID,
		CreatedAt:  t.CreatedAt,
	}
}

// ToDomain converts NotificationDTO to domain.NotificationTask
func ToDomain(dto NotificationDTO) domain.NotificationTask {
	return domain.NotificationTask{
		ID:         strings.TrimSpace(dto.ID),
		UserID:     dto.UserID,
		Type:       domain.NotificationType(strings.TrimSpace(dto.Type)),
		Title:      dto.Title,
		Message:    dto.Message,
		Link:       dto.Link,
		OrderID:    dto.OrderID,
		ScheduleID: dto.ScheduleID,
		CreatedAt:  dto.CreatedAt,
	}
}

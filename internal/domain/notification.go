package domain

import "time"

// NotificationType identifies what a notification task is about.
type NotificationType string

// List of notification types raised by the scheduler
const (
	NotificationScheduleProposed  NotificationType = "delivery_schedule_proposed"
	NotificationScheduleConfirmed NotificationType = "delivery_schedule_confirmed"
	NotificationScheduleRejected  NotificationType = "delivery_schedule_rejected"
)

// NotificationTask is a request to notify a user. Delivery is someone else's job.
type NotificationTask struct {
	ID         string
	UserID     int64
	Type       NotificationType
	Title      string
	Message    string
	Link       string
	OrderID    int64
	ScheduleID int64
	CreatedAt  time.Time
}

// ScheduleEvent describes a negotiation step that recipients should hear about.
type ScheduleEvent struct {
	Type     NotificationType
	ActorID  int64
	Order    Order
	Schedule DeliverySchedule
}

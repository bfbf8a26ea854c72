package notify

import (
	"fmt"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/truckban"
)

func compose(ev domain.ScheduleEvent) (title, message string) {
	when := fmt.Sprintf("%s at %s",
		ev.Schedule.ScheduledDate.Format("2006-01-02"),
		truckban.FormatTime(ev.Schedule.ScheduledTime))

	switch ev.Type {
	case domain.NotificationScheduleProposed:
		return "New delivery schedule proposed",
			fmt.Sprintf("A delivery on %s was proposed for order #%d. Please confirm or reject it.", when, ev.Order.ID)
	case domain.NotificationScheduleConfirmed:
		return "Delivery schedule confirmed",
			fmt.Sprintf("Order #%d will be delivered on %s.", ev.Order.ID, when)
	case domain.NotificationScheduleRejected:
		msg := fmt.Sprintf("The delivery proposed for order #%d on %s was rejected.", ev.Order.ID, when)
		if ev.Schedule.Notes != nil && *ev.Schedule.Notes != "" {
			msg += " Notes: " + *ev.Schedule.Notes
		}
		return "Delivery schedule rejected", msg
	default:
		return "Delivery schedule updated",
			fmt.Sprintf("The delivery schedule for order #%d changed.", ev.Order.ID)
	}
}

func orderLink(orderID int64) string {
	return fmt.Sprintf("/orders/%d", orderID)
}

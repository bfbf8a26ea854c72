package domain

import "time"

// OrderStatus represents the marketplace status of an order.
type OrderStatus string

// OrderStatusDeliveryConfirmed is set once both parties agree on a delivery schedule.
const OrderStatusDeliveryConfirmed OrderStatus = "delivery_confirmed"

// Order is the marketplace order as seen by the delivery scheduler.
// Only the delivery columns and status are ever written by this service.
type Order struct {
	ID       int64
	BuyerID  int64
	SellerID int64
	Status   OrderStatus

	ScheduledDate   *time.Time
	ScheduledTime   *string
	Route           *string
	IsCBD           bool
	TruckWeightKg   *float64
	DeliveryAddress *string
	IsExempt        bool
	ExemptionType   *string
}

// Involves reports whether the user is the buyer or the seller of the order.
func (o *Order) Involves(userID int64) bool {
	return userID != 0 && (o.BuyerID == userID || o.SellerID == userID)
}

// Counterparties returns the parties that should hear about an action taken by actorID.
// A buyer or seller gets the other side; anyone else (an administrator) gets both.
func (o *Order) Counterparties(actorID int64) []int64 {
	switch actorID {
	case o.BuyerID:
		return []int64{o.SellerID}
	case o.SellerID:
		return []int64{o.BuyerID}
	default:
		return []int64{o.BuyerID, o.SellerID}
	}
}

// OrderScheduleUpdate carries the delivery fields written by the single-step scheduling path.
type OrderScheduleUpdate struct {
	OrderID int64
	DeliveryFields
	IsExempt      bool
	ExemptionType *string
}

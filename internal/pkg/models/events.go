package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NSQ topics consumed by the notification layer
const (
	TopicRideRequested      = "ride.requested"
	TopicRideRequestExpired = "ride.request_expired"
	TopicRideAccepted       = "ride.accepted"
	TopicRideStatusChanged  = "ride.status_changed"
	TopicRideCompleted      = "ride.completed"
	TopicRideCancelled      = "ride.cancelled"
	TopicPaymentSettled     = "payment.settled"
)

// RideRequestedEvent notifies candidate drivers about a new request
type RideRequestedEvent struct {
	RequestID      uuid.UUID       `json:"request_id"`
	UserID         uuid.UUID       `json:"user_id"`
	RideType       RideType        `json:"ride_type"`
	Pickup         Location        `json:"pickup"`
	Dropoff        Location        `json:"dropoff"`
	EstimatedPrice decimal.Decimal `json:"estimated_price"`
	Candidates     []uuid.UUID     `json:"candidates"`
	RequestedAt    time.Time       `json:"requested_at"`
}

// RideEvent carries a ride lifecycle change
type RideEvent struct {
	RideID    uuid.UUID  `json:"ride_id"`
	RequestID uuid.UUID  `json:"request_id"`
	UserID    uuid.UUID  `json:"user_id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	Status    RideStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}

// RideCompletedEvent carries the final settlement breakdown
type RideCompletedEvent struct {
	RideID         uuid.UUID       `json:"ride_id"`
	UserID         uuid.UUID       `json:"user_id"`
	DriverID       uuid.UUID       `json:"driver_id"`
	Price          decimal.Decimal `json:"price"`
	DriverEarnings decimal.Decimal `json:"driver_earnings"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	CompletedAt    time.Time       `json:"completed_at"`
}

// RideCancelledEvent carries the cancellation details
type RideCancelledEvent struct {
	RideID      uuid.UUID `json:"ride_id"`
	RequestID   uuid.UUID `json:"request_id"`
	UserID      uuid.UUID `json:"user_id"`
	DriverID    uuid.UUID `json:"driver_id"`
	Reason      string    `json:"reason"`
	CancelledBy string    `json:"cancelled_by"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// PaymentSettledEvent is published after a webhook outcome is applied
type PaymentSettledEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	SettledAt     time.Time         `json:"settled_at"`
}

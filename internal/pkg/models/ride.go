package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RideType classifies a ride request
type RideType string

const (
	RideTypeTaxi     RideType = "TAXI"
	RideTypeMoto     RideType = "MOTO"
	RideTypeDelivery RideType = "DELIVERY"
)

// RequestStatus is the lifecycle state of a ride request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
)

// IsTerminal reports whether the request can no longer transition
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCancelled || s == RequestStatusCompleted
}

// RideRequest is a passenger's intent to ride. At most one non-terminal
// request exists per user at any time.
type RideRequest struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	PickupLat      float64         `json:"pickup_lat" db:"pickup_lat"`
	PickupLng      float64         `json:"pickup_lng" db:"pickup_lng"`
	PickupAddress  string          `json:"pickup_address" db:"pickup_address"`
	DropoffLat     float64         `json:"dropoff_lat" db:"dropoff_lat"`
	DropoffLng     float64         `json:"dropoff_lng" db:"dropoff_lng"`
	DropoffAddress string          `json:"dropoff_address" db:"dropoff_address"`
	RideType       RideType        `json:"ride_type" db:"ride_type"`
	EstimatedPrice decimal.Decimal `json:"estimated_price" db:"estimated_price"`
	DistanceKm     float64         `json:"distance_km" db:"distance_km"`
	Status         RequestStatus   `json:"status" db:"status"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// Pickup returns the pickup point as a Location
func (r *RideRequest) Pickup() Location {
	return Location{Latitude: r.PickupLat, Longitude: r.PickupLng, Address: r.PickupAddress}
}

// Dropoff returns the dropoff point as a Location
func (r *RideRequest) Dropoff() Location {
	return Location{Latitude: r.DropoffLat, Longitude: r.DropoffLng, Address: r.DropoffAddress}
}

// RideStatus is the lifecycle state of an accepted ride
type RideStatus string

const (
	RideStatusAccepted   RideStatus = "ACCEPTED"
	RideStatusArriving   RideStatus = "DRIVER_ARRIVING"
	RideStatusArrived    RideStatus = "ARRIVED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// IsTerminal reports whether the ride can no longer transition
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride is created once a driver accepts a request. It snapshots the
// request's pickup/dropoff so later edits to the request cannot drift.
type Ride struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	RequestID      uuid.UUID       `json:"request_id" db:"request_id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	DriverID       uuid.UUID       `json:"driver_id" db:"driver_id"`
	PickupLat      float64         `json:"pickup_lat" db:"pickup_lat"`
	PickupLng      float64         `json:"pickup_lng" db:"pickup_lng"`
	PickupAddress  string          `json:"pickup_address" db:"pickup_address"`
	DropoffLat     float64         `json:"dropoff_lat" db:"dropoff_lat"`
	DropoffLng     float64         `json:"dropoff_lng" db:"dropoff_lng"`
	DropoffAddress string          `json:"dropoff_address" db:"dropoff_address"`
	RideType       RideType        `json:"ride_type" db:"ride_type"`
	Price          decimal.Decimal `json:"price" db:"price"`
	Status         RideStatus      `json:"status" db:"status"`
	AcceptedAt     time.Time       `json:"accepted_at" db:"accepted_at"`
	ArrivingAt     *time.Time      `json:"arriving_at,omitempty" db:"arriving_at"`
	ArrivedAt      *time.Time      `json:"arrived_at,omitempty" db:"arrived_at"`
	StartedAt      *time.Time      `json:"started_at,omitempty" db:"started_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancelReason   *string         `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CancelledBy    *string         `json:"cancelled_by,omitempty" db:"cancelled_by"`
}

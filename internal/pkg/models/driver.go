package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus is the administrative state of a driver account
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "ACTIVE"
	DriverStatusInactive DriverStatus = "INACTIVE"
)

// VehicleType classifies a driver's vehicle
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTypeDelivery   VehicleType = "DELIVERY"
)

// Driver represents a driver profile.
// IsAvailable acts as a lock: false while the driver is assigned to a
// non-terminal ride, and only the dispatch engine toggles it during one.
// IsOnline is the driver's own presence flag and may change mid-ride
// without freeing the driver.
type Driver struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	IsOnline    bool         `json:"is_online" db:"is_online"`
	IsAvailable bool         `json:"is_available" db:"is_available"`
	Status      DriverStatus `json:"status" db:"status"`
	VehicleType VehicleType  `json:"vehicle_type" db:"vehicle_type"`
	CurrentLat  float64      `json:"current_lat" db:"current_lat"`
	CurrentLng  float64      `json:"current_lng" db:"current_lng"`
	Rating      float64      `json:"rating" db:"rating"`
	TotalRides  int          `json:"total_rides" db:"total_rides"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// NearbyDriver is a matcher candidate with its distance from the pickup point
type NearbyDriver struct {
	DriverID   uuid.UUID `json:"driver_id"`
	DistanceKm float64   `json:"distance_km"`
	Location   Location  `json:"location"`
}

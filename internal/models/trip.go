package models

import "time"

// Trip represents a planned haul: current position, pickup and dropoff.
type Trip struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"user_id" db:"user_id"`

	CurrentLocation string  `json:"current_location" db:"current_location"`
	CurrentLat      float64 `json:"current_latitude" db:"current_lat"`
	CurrentLon      float64 `json:"current_longitude" db:"current_lon"`

	PickupLocation string  `json:"pickup_location" db:"pickup_location"`
	PickupLat      float64 `json:"pickup_latitude" db:"pickup_lat"`
	PickupLon      float64 `json:"pickup_longitude" db:"pickup_lon"`

	DropoffLocation string  `json:"dropoff_location" db:"dropoff_location"`
	DropoffLat      float64 `json:"dropoff_latitude" db:"dropoff_lat"`
	DropoffLon      float64 `json:"dropoff_longitude" db:"dropoff_lon"`

	// Hours already used in the current 70-hour/8-day driving cycle.
	CurrentCycleUsed float64 `json:"current_cycle_used" db:"current_cycle_used"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTripRequest is the payload for POST /trips.
type CreateTripRequest struct {
	CurrentLocation  string  `json:"current_location" binding:"required"`
	CurrentLat       float64 `json:"current_latitude" binding:"required"`
	CurrentLon       float64 `json:"current_longitude" binding:"required"`
	PickupLocation   string  `json:"pickup_location" binding:"required"`
	PickupLat        float64 `json:"pickup_latitude" binding:"required"`
	PickupLon        float64 `json:"pickup_longitude" binding:"required"`
	DropoffLocation  string  `json:"dropoff_location" binding:"required"`
	DropoffLat       float64 `json:"dropoff_latitude" binding:"required"`
	DropoffLon       float64 `json:"dropoff_longitude" binding:"required"`
	CurrentCycleUsed float64 `json:"current_cycle_used"`
}

// TripsResponse is a paginated list of trips.
type TripsResponse struct {
	Data       []Trip `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

// TripFilter holds query parameters for listing trips.
type TripFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a new trip and fills in its ID
func (r *TripRepository) Create(trip *models.Trip) error {
	result, err := r.db.Exec(`
		INSERT INTO trips (
			user_id,
			current_location, current_lat, current_lon,
			pickup_location, pickup_lat, pickup_lon,
			dropoff_location, dropoff_lat, dropoff_lon,
			current_cycle_used
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.UserID,
		trip.CurrentLocation, trip.CurrentLat, trip.CurrentLon,
		trip.PickupLocation, trip.PickupLat, trip.PickupLon,
		trip.DropoffLocation, trip.DropoffLat, trip.DropoffLon,
		trip.CurrentCycleUsed,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	trip.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by ID, nil when absent
func (r *TripRepository) GetByID(id int64) (*models.Trip, error) {
	var t models.Trip
	err := r.db.QueryRow(`
		SELECT id, user_id,
			current_location, current_lat, current_lon,
			pickup_location, pickup_lat, pickup_lon,
			dropoff_location, dropoff_lat, dropoff_lon,
			current_cycle_used, created_at, updated_at
		FROM trips WHERE id = ?`, id,
	).Scan(
		&t.ID, &t.UserID,
		&t.CurrentLocation, &t.CurrentLat, &t.CurrentLon,
		&t.PickupLocation, &t.PickupLat, &t.PickupLon,
		&t.DropoffLocation, &t.DropoffLat, &t.DropoffLon,
		&t.CurrentCycleUsed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &t, nil
}

// GetByUser retrieves a user's trips with pagination, newest first
func (r *TripRepository) GetByUser(userID int64, filter models.TripFilter) (*models.TripsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	var total int64
	if err := r.db.QueryRow(
		"SELECT COUNT(*) FROM trips WHERE user_id = ?", userID,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count trips: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	rows, err := r.db.Query(`
		SELECT id, user_id,
			current_location, current_lat, current_lon,
			pickup_location, pickup_lat, pickup_lon,
			dropoff_location, dropoff_lat, dropoff_lon,
			current_cycle_used, created_at, updated_at
		FROM trips
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		userID, filter.PageSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0, filter.PageSize)
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(
			&t.ID, &t.UserID,
			&t.CurrentLocation, &t.CurrentLat, &t.CurrentLon,
			&t.PickupLocation, &t.PickupLat, &t.PickupLon,
			&t.DropoffLocation, &t.DropoffLat, &t.DropoffLon,
			&t.CurrentCycleUsed, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	return &models.TripsResponse{
		Data:       trips,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Delete removes a trip; duty logs cascade
func (r *TripRepository) Delete(id, userID int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM trips WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

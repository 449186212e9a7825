package service

import (
	"errors"
	"time"

	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/repository"
	"github.com/hauliq/eldview-backend-go/internal/schedule"
)

// ErrTripNotFound is returned for missing trips and trips owned by
// someone else; the API does not distinguish the two.
var ErrTripNotFound = errors.New("trip not found")

// TripService handles business logic for trips and their duty logs
type TripService struct {
	trips     *repository.TripRepository
	logs      *repository.DutyLogRepository
	generator *schedule.Generator
}

// NewTripService creates a new trip service
func NewTripService(trips *repository.TripRepository, logs *repository.DutyLogRepository) *TripService {
	return &TripService{
		trips:     trips,
		logs:      logs,
		generator: schedule.NewGenerator(),
	}
}

// Create stores a trip and generates its duty-log schedule
func (s *TripService) Create(userID int64, req models.CreateTripRequest) (*models.Trip, error) {
	trip := &models.Trip{
		UserID:           userID,
		CurrentLocation:  req.CurrentLocation,
		CurrentLat:       req.CurrentLat,
		CurrentLon:       req.CurrentLon,
		PickupLocation:   req.PickupLocation,
		PickupLat:        req.PickupLat,
		PickupLon:        req.PickupLon,
		DropoffLocation:  req.DropoffLocation,
		DropoffLat:       req.DropoffLat,
		DropoffLon:       req.DropoffLon,
		CurrentCycleUsed: req.CurrentCycleUsed,
	}
	if err := s.trips.Create(trip); err != nil {
		return nil, err
	}

	entries := s.generator.Generate(trip, time.Now().UTC())
	if err := s.logs.InsertBatch(trip.ID, entries); err != nil {
		return nil, err
	}
	return trip, nil
}

// List retrieves a user's trips with pagination
func (s *TripService) List(userID int64, filter models.TripFilter) (*models.TripsResponse, error) {
	return s.trips.GetByUser(userID, filter)
}

// Get retrieves a trip owned by the user
func (s *TripService) Get(id, userID int64) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil || trip.UserID != userID {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// Details returns a trip's duty log grouped into daily summaries
func (s *TripService) Details(id, userID int64) (*models.TripDetails, error) {
	if _, err := s.Get(id, userID); err != nil {
		return nil, err
	}

	entries, err := s.logs.GetByTrip(id)
	if err != nil {
		return nil, err
	}
	return &models.TripDetails{
		TripID:         id,
		DailySummaries: schedule.Summarize(entries),
	}, nil
}

// Delete removes a trip owned by the user; its duty logs cascade
func (s *TripService) Delete(id, userID int64) error {
	deleted, err := s.trips.Delete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTripNotFound
	}
	return nil
}

// DayLog returns one day's duty intervals for an owned trip
func (s *TripService) DayLog(id, userID int64, date string) ([]models.DutyInterval, error) {
	if _, err := s.Get(id, userID); err != nil {
		return nil, err
	}
	return s.logs.GetByTripDay(id, date)
}

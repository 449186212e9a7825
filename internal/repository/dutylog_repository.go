package repository

import (
	"database/sql"
	"fmt"

	"github.com/hauliq/eldview-backend-go/internal/models"
)

// DutyLogRepository handles database operations for duty log entries
type DutyLogRepository struct {
	db *sql.DB
}

// NewDutyLogRepository creates a new duty log repository
func NewDutyLogRepository(db *sql.DB) *DutyLogRepository {
	return &DutyLogRepository{db: db}
}

// InsertBatch stores a trip's generated duty log in one transaction.
// Any previous log for the trip is replaced.
func (r *DutyLogRepository) InsertBatch(tripID int64, intervals []models.DutyInterval) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := r.insertBatchTx(tx, tripID, intervals); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("insert error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit duty logs: %w", err)
	}
	return nil
}

func (r *DutyLogRepository) insertBatchTx(tx *sql.Tx, tripID int64, intervals []models.DutyInterval) error {
	if _, err := tx.Exec("DELETE FROM duty_logs WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("failed to clear duty logs: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO duty_logs (
			trip_id, log_date, seq, status, start_time, end_time,
			note, loc_name, loc_lat, loc_lon, miles
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare duty log insert: %w", err)
	}
	defer stmt.Close()

	for _, iv := range intervals {
		var name string
		var lat, lon float64
		if iv.Location != nil {
			name, lat, lon = iv.Location.Name, iv.Location.Lat, iv.Location.Lon
		}
		if _, err := stmt.Exec(
			tripID, iv.LogDate, iv.Seq, iv.Status.Code(),
			iv.StartTime, iv.EndTime, iv.Note,
			name, lat, lon, iv.Miles,
		); err != nil {
			return fmt.Errorf("failed to insert duty log: %w", err)
		}
	}
	return nil
}

// GetByTrip retrieves a trip's duty log ordered by day and sequence
func (r *DutyLogRepository) GetByTrip(tripID int64) ([]models.DutyInterval, error) {
	return r.query(`
		SELECT id, trip_id, log_date, seq, status, start_time, end_time,
			note, loc_name, loc_lat, loc_lon, miles
		FROM duty_logs
		WHERE trip_id = ?
		ORDER BY log_date, seq`, tripID)
}

// GetByTripDay retrieves one day's duty log ordered by sequence
func (r *DutyLogRepository) GetByTripDay(tripID int64, date string) ([]models.DutyInterval, error) {
	return r.query(`
		SELECT id, trip_id, log_date, seq, status, start_time, end_time,
			note, loc_name, loc_lat, loc_lon, miles
		FROM duty_logs
		WHERE trip_id = ? AND log_date = ?
		ORDER BY seq`, tripID, date)
}

func (r *DutyLogRepository) query(q string, args ...interface{}) ([]models.DutyInterval, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty logs: %w", err)
	}
	defer rows.Close()

	var intervals []models.DutyInterval
	for rows.Next() {
		var iv models.DutyInterval
		var code, name string
		var lat, lon float64
		if err := rows.Scan(
			&iv.ID, &iv.TripID, &iv.LogDate, &iv.Seq, &code,
			&iv.StartTime, &iv.EndTime, &iv.Note,
			&name, &lat, &lon, &iv.Miles,
		); err != nil {
			return nil, fmt.Errorf("failed to scan duty log: %w", err)
		}

		iv.Status, err = models.ParseStatus(code)
		if err != nil {
			return nil, err
		}
		if lat != 0 || lon != 0 || name != "" {
			iv.Location = &models.Location{Lat: lat, Lon: lon, Name: name}
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

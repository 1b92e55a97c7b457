package reservation

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *repository) FindOverlapping(ctx context.Context, roomID int, from, to time.Time, excludeID *int) ([]Reservation, error) {
	query := `
		SELECT id, meetingroom_id, user_id, from_reserve, to_reserve
		FROM reservations
		WHERE meetingroom_id = $1
			AND from_reserve <= $3
			AND to_reserve >= $2
	`
	args := []interface{}{roomID, from, to}

	if excludeID != nil {
		query += `AND id <> $4`
		args = append(args, *excludeID)
	}

	reservations := []Reservation{}
	err := r.db.SelectContext(ctx, &reservations, query, args...)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindFutureForRoom(ctx context.Context, roomID int) ([]Reservation, error) {
	query := `
		SELECT id, meetingroom_id, user_id, from_reserve, to_reserve
		FROM reservations
		WHERE meetingroom_id = $1 AND from_reserve > $2
	`

	reservations := []Reservation{}
	err := r.db.SelectContext(ctx, &reservations, query, roomID, r.now())
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByUser(ctx context.Context, userID int) ([]Reservation, error) {
	query := `
		SELECT id, meetingroom_id, user_id, from_reserve, to_reserve
		FROM reservations
		WHERE user_id = $1
	`

	reservations := []Reservation{}
	err := r.db.SelectContext(ctx, &reservations, query, userID)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) CountOverlappingPerRoom(ctx context.Context, from, to time.Time) ([]RoomCount, error) {
	query := `
		SELECT meetingroom_id, COUNT(meetingroom_id) AS count
		FROM reservations
		WHERE from_reserve >= $1 AND to_reserve <= $2
		GROUP BY meetingroom_id
	`

	counts := []RoomCount{}
	err := r.db.SelectContext(ctx, &counts, query, from, to)
	if err != nil {
		return nil, err
	}

	return counts, nil
}

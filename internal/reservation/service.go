package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetingroom/internal/metrics"
)

var (
	ErrInvalidRange = errors.New("reservation start must be before its end")
	ErrRoomBusy     = errors.New("meeting room is already reserved for this period")
)

type Service interface {
	CheckAvailability(ctx context.Context, roomID int, from, to time.Time, excludeID *int) ([]Reservation, error)
	FutureForRoom(ctx context.Context, roomID int) ([]Reservation, error)
	ForUser(ctx context.Context, userID int) ([]Reservation, error)
	CountPerRoom(ctx context.Context, from, to time.Time) ([]RoomCount, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CheckAvailability returns the reservations that collide with [from, to].
// When there are any, the error wraps ErrRoomBusy.
func (s *service) CheckAvailability(ctx context.Context, roomID int, from, to time.Time, excludeID *int) ([]Reservation, error) {
	if !from.Before(to) {
		return nil, ErrInvalidRange
	}

	conflicts, err := s.repo.FindOverlapping(ctx, roomID, from, to, excludeID)
	metrics.RecordReservationQuery("find_overlapping", err)
	if err != nil {
		return nil, err
	}

	if len(conflicts) > 0 {
		ids := make([]int, 0, len(conflicts))
		for _, r := range conflicts {
			ids = append(ids, r.ID)
		}
		return conflicts, fmt.Errorf("%w: conflicts with reservations %v", ErrRoomBusy, ids)
	}

	return conflicts, nil
}

func (s *service) FutureForRoom(ctx context.Context, roomID int) ([]Reservation, error) {
	reservations, err := s.repo.FindFutureForRoom(ctx, roomID)
	metrics.RecordReservationQuery("find_future_for_room", err)
	return reservations, err
}

func (s *service) ForUser(ctx context.Context, userID int) ([]Reservation, error) {
	reservations, err := s.repo.FindByUser(ctx, userID)
	metrics.RecordReservationQuery("find_by_user", err)
	return reservations, err
}

func (s *service) CountPerRoom(ctx context.Context, from, to time.Time) ([]RoomCount, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	counts, err := s.repo.CountOverlappingPerRoom(ctx, from, to)
	metrics.RecordReservationQuery("count_overlapping_per_room", err)
	return counts, err
}

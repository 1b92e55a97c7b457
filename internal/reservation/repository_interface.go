package reservation

import (
	"context"
	"time"
)

type Repository interface {
	FindOverlapping(ctx context.Context, roomID int, from, to time.Time, excludeID *int) ([]Reservation, error)
	FindFutureForRoom(ctx context.Context, roomID int) ([]Reservation, error)
	FindByUser(ctx context.Context, userID int) ([]Reservation, error)
	CountOverlappingPerRoom(ctx context.Context, from, to time.Time) ([]RoomCount, error)
}

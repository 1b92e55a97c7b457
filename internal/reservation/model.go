package reservation

import "time"

type Reservation struct {
	ID            int       `db:"id" json:"id"`
	MeetingRoomID int       `db:"meetingroom_id" json:"meetingroom_id"`
	UserID        int       `db:"user_id" json:"user_id"`
	FromReserve   time.Time `db:"from_reserve" json:"from_reserve"`
	ToReserve     time.Time `db:"to_reserve" json:"to_reserve"`
}

// Overlaps reports whether the reservation intersects [from, to].
// Both bounds are inclusive, so touching intervals overlap.
func (r Reservation) Overlaps(from, to time.Time) bool {
	return !r.FromReserve.After(to) && !r.ToReserve.Before(from)
}

// Within reports whether the reservation lies entirely inside [from, to].
func (r Reservation) Within(from, to time.Time) bool {
	return !r.FromReserve.Before(from) && !r.ToReserve.After(to)
}

type RoomCount struct {
	MeetingRoomID int `db:"meetingroom_id" json:"meetingroom_id"`
	Count         int `db:"count" json:"count"`
}

type AvailabilityResponse struct {
	Available bool          `json:"available" example:"false"`
	Conflicts []Reservation `json:"conflicts"`
}

package reservation

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps reservations in process memory. It evaluates the
// same predicates as the SQL repository and backs local runs and tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  []Reservation
	nextID int
	now    func() time.Time
}

func NewMemoryRepository(items ...Reservation) *MemoryRepository {
	m := &MemoryRepository{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, r := range items {
		m.Add(r)
	}
	return m
}

// Add stores r, assigning the next free ID when r.ID is zero.
func (m *MemoryRepository) Add(r Reservation) Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == 0 {
		r.ID = m.nextID
	}
	if r.ID >= m.nextID {
		m.nextID = r.ID + 1
	}
	m.items = append(m.items, r)
	return r
}

func (m *MemoryRepository) FindOverlapping(_ context.Context, roomID int, from, to time.Time, excludeID *int) ([]Reservation, error) {
	return m.filter(func(r Reservation) bool {
		if excludeID != nil && r.ID == *excludeID {
			return false
		}
		return r.MeetingRoomID == roomID && r.Overlaps(from, to)
	}), nil
}

func (m *MemoryRepository) FindFutureForRoom(_ context.Context, roomID int) ([]Reservation, error) {
	now := m.now()
	return m.filter(func(r Reservation) bool {
		return r.MeetingRoomID == roomID && r.FromReserve.After(now)
	}), nil
}

func (m *MemoryRepository) FindByUser(_ context.Context, userID int) ([]Reservation, error) {
	return m.filter(func(r Reservation) bool {
		return r.UserID == userID
	}), nil
}

func (m *MemoryRepository) CountOverlappingPerRoom(_ context.Context, from, to time.Time) ([]RoomCount, error) {
	perRoom := make(map[int]int)
	for _, r := range m.filter(func(r Reservation) bool { return r.Within(from, to) }) {
		perRoom[r.MeetingRoomID]++
	}

	counts := make([]RoomCount, 0, len(perRoom))
	for roomID, n := range perRoom {
		counts = append(counts, RoomCount{MeetingRoomID: roomID, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].MeetingRoomID < counts[j].MeetingRoomID
	})

	return counts, nil
}

func (m *MemoryRepository) filter(keep func(Reservation) bool) []Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Reservation{}
	for _, r := range m.items {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

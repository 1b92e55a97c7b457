package reservation_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetingroom/internal/db"
	"meetingroom/internal/reservation"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	database, err := db.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database, "../../migrations"))

	_, err = database.Exec(`TRUNCATE reservations, meeting_rooms, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to clean tables")

	t.Cleanup(func() { database.Close() })
	return database
}

func seed(t *testing.T, database *sqlx.DB, rows []reservation.Reservation) {
	t.Helper()

	database.MustExec(`INSERT INTO users (name, email) VALUES ('Ann', 'ann@example.com'), ('Bob', 'bob@example.com')`)
	database.MustExec(`INSERT INTO meeting_rooms (name) VALUES ('Blue'), ('Green')`)

	for _, r := range rows {
		_, err := database.NamedExec(`
			INSERT INTO reservations (id, meetingroom_id, user_id, from_reserve, to_reserve)
			VALUES (:id, :meetingroom_id, :user_id, :from_reserve, :to_reserve)
		`, r)
		require.NoError(t, err)
	}
}

func reservationIDs(list []reservation.Reservation) []int {
	out := make([]int, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestRepository_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	future := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	seed(t, database, []reservation.Reservation{
		{ID: 1, MeetingRoomID: 1, UserID: 1, FromReserve: at(9), ToReserve: at(10)},
		{ID: 2, MeetingRoomID: 1, UserID: 2, FromReserve: at(12), ToReserve: at(13)},
		{ID: 3, MeetingRoomID: 1, UserID: 1, FromReserve: at(14), ToReserve: at(15)},
		{ID: 4, MeetingRoomID: 2, UserID: 2, FromReserve: at(10), ToReserve: at(12)},
		{ID: 5, MeetingRoomID: 1, UserID: 2, FromReserve: future, ToReserve: future.Add(time.Hour)},
	})

	repo := reservation.NewRepository(database)

	t.Run("Overlapping with inclusive bounds", func(t *testing.T) {
		list, err := repo.FindOverlapping(ctx, 1, at(10), at(12), nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2}, reservationIDs(list))
	})

	t.Run("Overlapping with exclusion", func(t *testing.T) {
		excludeID := 1
		list, err := repo.FindOverlapping(ctx, 1, at(10), at(12), &excludeID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{2}, reservationIDs(list))
	})

	t.Run("Disjoint range", func(t *testing.T) {
		list, err := repo.FindOverlapping(ctx, 1, at(10).Add(time.Minute), at(11), nil)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Future for room", func(t *testing.T) {
		list, err := repo.FindFutureForRoom(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{5}, reservationIDs(list))
	})

	t.Run("By user", func(t *testing.T) {
		list, err := repo.FindByUser(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 3}, reservationIDs(list))
	})

	t.Run("Count per room", func(t *testing.T) {
		counts, err := repo.CountOverlappingPerRoom(ctx, at(9), at(13))
		require.NoError(t, err)
		assert.ElementsMatch(t, []reservation.RoomCount{
			{MeetingRoomID: 1, Count: 2},
			{MeetingRoomID: 2, Count: 1},
		}, counts)
	})
}

package reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"meetingroom/internal/api"
	"meetingroom/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type rangeQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type availabilityQuery struct {
	From      time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To        time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ExcludeID *int      `form:"exclude_id" binding:"omitempty,gt=0"`
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

func respondStorageError(c *gin.Context, op string, err error) {
	logger.Error("Reservation query failed", "operation", op, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
}

// CheckAvailability godoc
// @Summary      Check room availability
// @Description  Lists reservations of the room that overlap [from, to]; exclude_id skips the booking being edited.
// @Tags         meeting_rooms
// @Produce      json
// @Param        roomID      path   int     true   "Meeting room ID"
// @Param        from        query  string  true   "Range start (RFC 3339)"
// @Param        to          query  string  true   "Range end (RFC 3339)"
// @Param        exclude_id  query  int     false  "Reservation to ignore"
// @Success      200  {object}  AvailabilityResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /meeting_rooms/{roomID}/availability [get]
func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	var q availabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.RespondBindError(c, err)
		return
	}

	conflicts, err := h.service.CheckAvailability(c.Request.Context(), roomID, q.From, q.To, q.ExcludeID)
	switch {
	case errors.Is(err, ErrInvalidRange):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrRoomBusy):
		c.JSON(http.StatusOK, AvailabilityResponse{Available: false, Conflicts: conflicts})
	case err != nil:
		respondStorageError(c, "find_overlapping", err)
	default:
		c.JSON(http.StatusOK, AvailabilityResponse{Available: true, Conflicts: []Reservation{}})
	}
}

// ListFutureForRoom godoc
// @Summary      Upcoming reservations of a room
// @Tags         meeting_rooms
// @Produce      json
// @Param        roomID  path  int  true  "Meeting room ID"
// @Success      200  {array}   Reservation
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /meeting_rooms/{roomID}/reservations [get]
func (h *Handler) ListFutureForRoom(c *gin.Context) {
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	reservations, err := h.service.FutureForRoom(c.Request.Context(), roomID)
	if err != nil {
		respondStorageError(c, "find_future_for_room", err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ListForUser godoc
// @Summary      Reservations of a user
// @Tags         reservations
// @Produce      json
// @Param        userID  path  int  true  "User ID"
// @Success      200  {array}   Reservation
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /users/{userID}/reservations [get]
func (h *Handler) ListForUser(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	reservations, err := h.service.ForUser(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, "find_by_user", err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// RoomStats godoc
// @Summary      Reservation count per room
// @Description  Counts reservations that start and end inside [from, to], grouped by room.
// @Tags         reservations
// @Produce      json
// @Param        from  query  string  true  "Range start (RFC 3339)"
// @Param        to    query  string  true  "Range end (RFC 3339)"
// @Success      200  {array}   RoomCount
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /reservations/stats [get]
func (h *Handler) RoomStats(c *gin.Context) {
	var q rangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.RespondBindError(c, err)
		return
	}

	counts, err := h.service.CountPerRoom(c.Request.Context(), q.From, q.To)
	switch {
	case errors.Is(err, ErrInvalidRange):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case err != nil:
		respondStorageError(c, "count_overlapping_per_room", err)
	default:
		c.JSON(http.StatusOK, counts)
	}
}

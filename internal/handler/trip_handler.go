package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hauliq/eldview-backend-go/internal/middleware"
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/service"
	"github.com/hauliq/eldview-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	trips *service.TripService
	views *service.ViewService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(trips *service.TripService, views *service.ViewService) *TripHandler {
	return &TripHandler{trips: trips, views: views}
}

// List handles GET /api/v1/trips
func (h *TripHandler) List(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	page, err := h.trips.List(middleware.CurrentUser(c).ID, filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list trips", err)
		return
	}
	response.Success(c, page)
}

// Create handles POST /api/v1/trips. Creating a trip also generates and
// stores its duty-log schedule.
func (h *TripHandler) Create(c *gin.Context) {
	var req models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid trip payload", err)
		return
	}

	trip, err := h.trips.Create(middleware.CurrentUser(c).ID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create trip", err)
		return
	}
	response.Created(c, trip)
}

// Get handles GET /api/v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	trip, err := h.trips.Get(id, middleware.CurrentUser(c).ID)
	if err != nil {
		tripError(c, err, "Failed to get trip")
		return
	}
	response.Success(c, trip)
}

// Details handles GET /api/v1/trips/:id/details
func (h *TripHandler) Details(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	details, err := h.trips.Details(id, middleware.CurrentUser(c).ID)
	if err != nil {
		tripError(c, err, "Failed to get trip details")
		return
	}
	response.Success(c, details)
}

// Delete handles DELETE /api/v1/trips/:id
func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	if err := h.trips.Delete(id, middleware.CurrentUser(c).ID); err != nil {
		tripError(c, err, "Failed to delete trip")
		return
	}
	h.views.Invalidate(id)
	response.Success(c, nil)
}

func tripID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid trip ID", err)
		return 0, false
	}
	return id, true
}

func tripError(c *gin.Context, err error, message string) {
	if errors.Is(err, service.ErrTripNotFound) {
		response.Error(c, http.StatusNotFound, "Trip not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, message, err)
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hauliq/eldview-backend-go/internal/middleware"
	"github.com/hauliq/eldview-backend-go/internal/service"
	"github.com/hauliq/eldview-backend-go/pkg/response"
)

// GeocodeHandler proxies reverse-geocode lookups through the session
// cache so repeated waypoint queries stay off the external service.
type GeocodeHandler struct {
	sessions *service.SessionRegistry
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(sessions *service.SessionRegistry) *GeocodeHandler {
	return &GeocodeHandler{sessions: sessions}
}

// Reverse handles GET /api/v1/reverse-geocode?lat=&lon=
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid lat", err)
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid lon", err)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		response.Error(c, http.StatusBadRequest, "Coordinates out of range")
		return
	}

	user := middleware.CurrentUser(c)
	sess := h.sessions.Get(middleware.CurrentToken(c), user.ID)

	name, err := sess.Resolver.Resolve(c.Request.Context(), lat, lon)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to resolve location", err)
		return
	}
	if name == "" {
		name = fmt.Sprintf("Location at %.4f, %.4f", lat, lon)
	}

	response.Success(c, gin.H{
		"lat":  lat,
		"lon":  lon,
		"name": name,
	})
}

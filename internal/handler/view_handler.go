package handler

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/hauliq/eldview-backend-go/internal/middleware"
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/service"
	"github.com/hauliq/eldview-backend-go/pkg/response"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ViewHandler handles HTTP requests for per-day timeline and route views
type ViewHandler struct {
	views    *service.ViewService
	sessions *service.SessionRegistry
}

// NewViewHandler creates a new view handler
func NewViewHandler(views *service.ViewService, sessions *service.SessionRegistry) *ViewHandler {
	return &ViewHandler{views: views, sessions: sessions}
}

// Timeline handles GET /api/v1/trips/:id/days/:date/timeline
func (h *ViewHandler) Timeline(c *gin.Context) {
	h.day(c, func(sess *service.Session, id int64, date string) (interface{}, error) {
		return h.views.Timeline(c.Request.Context(), sess, id, date)
	})
}

// Route handles GET /api/v1/trips/:id/days/:date/route
func (h *ViewHandler) Route(c *gin.Context) {
	h.day(c, func(sess *service.Session, id int64, date string) (interface{}, error) {
		return h.views.Route(c.Request.Context(), sess, id, date)
	})
}

func (h *ViewHandler) day(c *gin.Context, fn func(*service.Session, int64, string) (interface{}, error)) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	date := c.Param("date")
	if !datePattern.MatchString(date) {
		response.Error(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	user := middleware.CurrentUser(c)
	sess := h.sessions.Get(middleware.CurrentToken(c), user.ID)

	view, err := fn(sess, id, date)
	if err != nil {
		// Stored data violating the log contract is the client's data
		// problem, not a server fault.
		var badStatus *models.ErrBadStatus
		var badInterval *models.ErrBadInterval
		if errors.As(err, &badStatus) || errors.As(err, &badInterval) {
			response.Error(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		tripError(c, err, "Failed to build view")
		return
	}
	response.Success(c, view)
}

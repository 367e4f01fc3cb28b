package controller

import (
	"errors"
	"net/http"
	"touchhub/backend/internal/api/middleware"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/api/response"
	"touchhub/backend/internal/api/service"
	"touchhub/backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// PlayController handles play HTTP requests.
type PlayController struct {
	playService service.PlayService
	metrics     *metrics.Metrics
}

// NewPlayController creates a new PlayController.
func NewPlayController(playService service.PlayService, m *metrics.Metrics) *PlayController {
	return &PlayController{
		playService: playService,
		metrics:     m,
	}
}

// List handles GET /plays. Every play is returned, private ones included.
func (pc *PlayController) List(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	plays, err := pc.playService.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToPlayOuts(plays))
}

// ListCommunity handles GET /plays/community.
func (pc *PlayController) ListCommunity(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	plays, err := pc.playService.ListCommunity(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToPlayOuts(plays))
}

// ListMine handles GET /plays/me.
func (pc *PlayController) ListMine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	plays, err := pc.playService.ListMine(c.Request.Context(), user, page.Skip, page.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToPlayOuts(plays))
}

// Get handles GET /plays/:id.
func (pc *PlayController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	play, err := pc.playService.Get(c.Request.Context(), id)
	if err != nil {
		writePlayError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToPlayOut(play))
}

// Create handles POST /plays.
func (pc *PlayController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.PlayCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	play, err := pc.playService.Create(c.Request.Context(), user, &req)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	pc.metrics.PlayCreated()
	response.Success(c, http.StatusOK, models.ToPlayOut(play))
}

// Update handles PUT /plays/:id.
func (pc *PlayController) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.PlayUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	play, err := pc.playService.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		writePlayError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToPlayOut(play))
}

// Delete handles DELETE /plays/:id.
func (pc *PlayController) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := pc.playService.Delete(c.Request.Context(), user, id); err != nil {
		writePlayError(c, err)
		return
	}
	response.Message(c, "Play deleted successfully")
}

func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, response.MsgCouldNotValidate)
	}
	return user, ok
}

func writePlayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlayNotFound):
		response.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		response.InternalError(c, err)
	}
}

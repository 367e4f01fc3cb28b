package controller

import (
	"errors"
	"net/http"
	"strconv"
	"touchhub/backend/internal/api/middleware"
	"touchhub/backend/internal/api/models"
	"touchhub/backend/internal/api/response"
	"touchhub/backend/internal/api/service"
	"touchhub/backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// UserController handles user and authentication HTTP requests.
type UserController struct {
	userService service.UserService
	metrics     *metrics.Metrics
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService, m *metrics.Metrics) *UserController {
	return &UserController{
		userService: userService,
		metrics:     m,
	}
}

// Register handles POST /users.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			response.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, models.ToUserOut(user))
}

// Login handles POST /auth/token. Credentials may arrive form-encoded or as JSON.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	token, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			uc.metrics.AuthFailure(metrics.ReasonBadPassword)
			response.Unauthorized(c, response.MsgBadLoginCredential)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, token)
}

// Me handles GET /auth/me.
func (uc *UserController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, response.MsgCouldNotValidate)
		return
	}
	response.Success(c, http.StatusOK, models.ToUserOut(user))
}

// List handles GET /users.
func (uc *UserController) List(c *gin.Context) {
	page, ok := bindPagination(c)
	if !ok {
		return
	}

	users, err := uc.userService.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToUserOuts(users))
}

// Get handles GET /users/:id.
func (uc *UserController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := uc.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, models.ToUserOut(user))
}

func bindPagination(c *gin.Context) (models.Pagination, bool) {
	var page models.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BindError(c, err)
		return page, false
	}
	return page, true
}

// pathID parses the :id path segment. Non-integer ids are a 422.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		body := response.NewError(http.StatusUnprocessableEntity, response.MsgValidationFailed)
		body.Errors = []response.FieldError{{Field: "id", Message: "value is not a valid integer"}}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, body)
		return 0, false
	}
	return id, true
}

package operator

import (
	"errors"
	"net/http"

	"parkreg/internal/api"
	"parkreg/internal/auth"
	"parkreg/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

type Handler struct {
	service Service
	store   sessions.Store
}

func NewHandler(service Service, store sessions.Store) *Handler {
	return &Handler{
		service: service,
		store:   store,
	}
}

// Login godoc
// @Summary      Operator login
// @Description  Authenticates an operator, starts a console session and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Operator credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FailBinding(c, err)
		return
	}

	op, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.Fail(c, http.StatusUnauthorized, api.CodeUnauthorized, "Invalid username or password")
			return
		}
		logger.WithError(err).Error("login failed", "username", req.Username)
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, "Login failed")
		return
	}

	if err := auth.StartSession(c, h.store, op.Identity()); err != nil {
		logger.WithError(err).Error("failed to start session", "operator_id", op.ID)
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, "Failed to start session")
		return
	}

	logger.Info("operator logged in", "operator_id", op.ID, "username", op.Username)
	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Operator:     op,
	})
}

// Logout godoc
// @Summary      Operator logout
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.EndSession(c, h.store); err != nil {
		logger.WithError(err).Error("failed to end session")
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Refresh token payload"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		api.Fail(c, http.StatusBadRequest, api.CodeValidation, "refresh_token is required")
		return
	}

	accessToken, op, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, api.CodeUnauthorized, "invalid or expired refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"operator":     op,
	})
}

// GetMe godoc
// @Summary      Current operator
// @Tags         operators
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Operator
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	identity, ok := auth.CurrentOperator(c)
	if !ok {
		api.Fail(c, http.StatusUnauthorized, api.CodeUnauthorized, "Operator not authenticated")
		return
	}

	op, err := h.service.GetByID(c.Request.Context(), identity.ID)
	if err != nil {
		api.Fail(c, http.StatusNotFound, api.CodeNotFound, "Operator not found")
		return
	}

	c.JSON(http.StatusOK, op)
}

// Create godoc
// @Summary      Create operator
// @Description  Admin only.
// @Tags         operators
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Operator data"
// @Success      201      {object}  Operator
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /admin/operators [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FailBinding(c, err)
		return
	}

	op, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			api.Fail(c, http.StatusConflict, "username_exists", "Username already registered")
			return
		}
		logger.WithError(err).Error("failed to create operator", "username", req.Username)
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, "Failed to create operator")
		return
	}

	c.JSON(http.StatusCreated, op)
}

// List godoc
// @Summary      List operators
// @Description  Admin only.
// @Tags         operators
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Operator
// @Router       /admin/operators [get]
func (h *Handler) List(c *gin.Context) {
	ops, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to list operators")
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, "Failed to fetch operators")
		return
	}
	c.JSON(http.StatusOK, ops)
}

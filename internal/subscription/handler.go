package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"parkreg/internal/api"
	"parkreg/internal/logger"
	"parkreg/internal/pricing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Add godoc
// @Summary      Register monthly subscription
// @Description  Registers a monthly client. A plate can hold one subscription; expired ones stay until removed.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AddRequest  true  "Subscription data"
// @Success      201      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /subscriptions [post]
func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FailBinding(c, err)
		return
	}

	sub, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to register subscription")
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// List godoc
// @Summary      List monthly subscriptions
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  View
// @Router       /subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch subscriptions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// Get godoc
// @Summary      Get monthly subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Subscription ID"
// @Success      200  {object}  View
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to fetch subscription")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Renew godoc
// @Summary      Renew monthly subscription
// @Description  Replaces the expiration date.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int           true  "Subscription ID"
// @Param        request  body      RenewRequest  true  "New expiration date"
// @Success      200      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /subscriptions/{id}/renew [put]
func (h *Handler) Renew(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FailBinding(c, err)
		return
	}

	sub, err := h.service.Renew(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to renew subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Remove godoc
// @Summary      Remove monthly subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Subscription ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/{id} [delete]
func (h *Handler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to remove subscription")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Subscription removed"})
}

func (h *Handler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Fail(c, http.StatusNotFound, api.CodeNotFound, err.Error())
	case errors.Is(err, ErrDuplicateSubscription):
		api.Fail(c, http.StatusConflict, api.CodeDuplicateSubscription, err.Error())
	case errors.Is(err, ErrInvalidPlate),
		errors.Is(err, ErrInvalidExpiration),
		errors.Is(err, pricing.ErrUnknownVehicleType):
		api.Fail(c, http.StatusBadRequest, api.CodeValidation, err.Error())
	default:
		logger.WithError(err).Error(msg)
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, msg)
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		api.Fail(c, http.StatusBadRequest, api.CodeValidation, "Invalid subscription ID")
		return 0, false
	}
	return id, true
}

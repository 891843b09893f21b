package parking

import (
	"errors"
	"net/http"
	"strconv"

	"parkreg/internal/api"
	"parkreg/internal/auth"
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

// RegisterEntry godoc
// @Summary      Register vehicle entry
// @Description  Opens a parking session. Plates with a monthly subscription park free; an expired subscription refuses entry.
// @Tags         vehicles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      EntryRequest  true  "Vehicle data"
// @Success      201      {object}  EntryResult
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /vehicles/entry [post]
func (h *Handler) RegisterEntry(c *gin.Context) {
	op, ok := auth.CurrentOperator(c)
	if !ok {
		api.Fail(c, http.StatusUnauthorized, api.CodeUnauthorized, "Operator not authenticated")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FailBinding(c, err)
		return
	}
	req.Operator = op

	result, err := h.service.RegisterEntry(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Failed to register entry")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// RegisterExit godoc
// @Summary      Register vehicle exit
// @Description  Closes the session given by session_id, or the open session of plate, and charges the fee. When both are sent they must name the same vehicle.
// @Tags         vehicles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ExitRequest  true  "Session id or plate"
// @Success      200      {object}  ExitResult
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /vehicles/exit [post]
func (h *Handler) RegisterExit(c *gin.Context) {
	op, ok := auth.CurrentOperator(c)
	if !ok {
		api.Fail(c, http.StatusUnauthorized, api.CodeUnauthorized, "Operator not authenticated")
		return
	}

	var req ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FailBinding(c, err)
		return
	}
	req.Operator = op

	result, err := h.service.RegisterExit(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Failed to register exit")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListOpen godoc
// @Summary      Vehicles currently inside
// @Description  Open sessions with elapsed time and the fee they would pay now.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  OpenView
// @Router       /sessions/open [get]
func (h *Handler) ListOpen(c *gin.Context) {
	views, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to fetch open sessions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// Get godoc
// @Summary      Get parking session
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  Session
// @Failure      404  {object}  api.ErrorResponse
// @Router       /sessions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to fetch session")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Ticket godoc
// @Summary      Session ticket
// @Description  QR code PNG encoding the session id.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      png
// @Param        id   path  int  true  "Session ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /sessions/{id}/ticket.png [get]
func (h *Handler) Ticket(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	png, err := h.service.Ticket(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Failed to render ticket")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidPlate),
		errors.Is(err, ErrMissingReference),
		errors.Is(err, pricing.ErrUnknownVehicleType):
		api.Fail(c, http.StatusBadRequest, api.CodeValidation, err.Error())
	case errors.Is(err, ErrPlateMismatch):
		api.Fail(c, http.StatusBadRequest, api.CodePlateMismatch, err.Error())
	case errors.Is(err, pricing.ErrInvalidInterval):
		api.Fail(c, http.StatusBadRequest, api.CodeInvalidInterval, err.Error())
	case errors.Is(err, ErrSubscriptionExpired):
		api.Fail(c, http.StatusForbidden, api.CodeSubscriptionExpired, err.Error())
	case errors.Is(err, ErrNotFound):
		api.Fail(c, http.StatusNotFound, api.CodeNotFound, err.Error())
	case errors.Is(err, ErrAlreadyClosed):
		api.Fail(c, http.StatusConflict, api.CodeAlreadyClosed, err.Error())
	case errors.Is(err, ErrAlreadyParked):
		api.Fail(c, http.StatusConflict, api.CodeAlreadyParked, err.Error())
	case errors.Is(err, ErrIntegrityViolation):
		api.Fail(c, http.StatusConflict, api.CodeIntegrityViolation, err.Error())
	case errors.Is(err, ErrTicketUnavailable):
		api.Fail(c, http.StatusServiceUnavailable, api.CodeTicketUnavailable, err.Error())
	default:
		logger.WithError(err).Error(msg)
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, msg)
	}
}

func sessionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		api.Fail(c, http.StatusBadRequest, api.CodeValidation, "Invalid session ID")
		return 0, false
	}
	return id, true
}

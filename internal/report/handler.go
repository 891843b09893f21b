package report

import (
	"bytes"
	"net/http"
	"time"

	"parkreg/internal/api"
	"parkreg/internal/logger"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	loc     *time.Location
	now     func() time.Time
}

func NewHandler(service Service, loc *time.Location, now func() time.Time) *Handler {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{service: service, loc: loc, now: now}
}

// Daily godoc
// @Summary      Daily report
// @Description  Entries, earnings and vehicles still inside for one day. Defaults to today.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        date  query     string  false  "Day (YYYY-MM-DD)"
// @Success      200   {object}  Daily
// @Failure      400   {object}  api.ErrorResponse
// @Router       /reports/daily [get]
func (h *Handler) Daily(c *gin.Context) {
	d, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d)
}

// DailyXLSX godoc
// @Summary      Daily report spreadsheet
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date  query  string  false  "Day (YYYY-MM-DD)"
// @Success      200   {file}  binary
// @Failure      400   {object}  api.ErrorResponse
// @Router       /reports/daily.xlsx [get]
func (h *Handler) DailyXLSX(c *gin.Context) {
	d, ok := h.load(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, d, h.loc); err != nil {
		logger.WithError(err).Error("failed to render report workbook", "date", d.Date)
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, "Failed to render report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="report_`+d.Date+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) load(c *gin.Context) (*Daily, bool) {
	day, err := ParseDate(c.Query("date"), h.loc, h.now())
	if err != nil {
		api.Fail(c, http.StatusBadRequest, api.CodeValidation, err.Error())
		return nil, false
	}

	d, err := h.service.Daily(c.Request.Context(), day)
	if err != nil {
		logger.WithError(err).Error("failed to build daily report")
		api.Fail(c, http.StatusInternalServerError, api.CodeInternal, "Failed to build report")
		return nil, false
	}
	return d, true
}

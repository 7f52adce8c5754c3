package api

import (
	"net/http"

	resdto "canteen-core/internal/handler/dto/response"
	"canteen-core/internal/pkg/errs"
	"canteen-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	orderQueries queries.OrderQueries
}

func NewReportHandler(orderQueries queries.OrderQueries) *ReportHandler {
	return &ReportHandler{orderQueries: orderQueries}
}

// @Summary Daily report
// @Description Aggregate order counts and revenue for one day (canteen staff only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string true "Report date (YYYY-MM-DD)"
// @Param canteen_id query string false "Scope to one canteen"
// @Success 200 {object} resdto.DailyReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/daily [get]
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	var canteenID *uuid.UUID
	if raw := c.Query("canteen_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid canteen_id format",
			})
			return
		}
		canteenID = &id
	}

	report, err := h.orderQueries.DailyReport(c.Request.Context(), date, canteenID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDailyReportView(report))
}

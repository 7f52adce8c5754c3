package api

import (
	"net/http"
	"strconv"

	resdto "canteen-core/internal/handler/dto/response"
	"canteen-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityQueries queries.ActivityQueries
}

func NewActivityHandler(activityQueries queries.ActivityQueries) *ActivityHandler {
	return &ActivityHandler{activityQueries: activityQueries}
}

// @Summary List recent activity
// @Description List recent audit trail entries (canteen staff only)
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows to return"
// @Success 200 {array} resdto.ActivityResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit format",
			})
			return
		}
		limit = parsed
	}

	entries, err := h.activityQueries.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ActivityResponse, len(entries))
	for i, entry := range entries {
		response[i] = resdto.FromActivityView(entry)
	}

	c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
)

// ActivityHandler serves indexed contract events
type ActivityHandler struct {
	activity interfaces.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activity interfaces.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// ListActivity godoc
// @Summary List contract activity for an address
// @Tags activity
// @Produce json
// @Param address query string true "Address"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} responses.PaginatedResponse
// @Router /api/v1/activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	limit, err := queryInt32(c, "limit")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid limit", err)
		return
	}
	offset, err := queryInt32(c, "offset")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid offset", err)
		return
	}

	events, err := h.activity.ListActivity(c.Request.Context(), params.ListActivityParams{
		Address: c.Query("address"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleServiceError(c, err, "load activity")
		return
	}

	limit = params.NormalizeLimit(limit)
	sendSuccess(c, http.StatusOK, responses.PaginatedResponse{
		Object:  "list",
		Data:    responses.FromContractEvents(events),
		HasMore: len(events) == int(limit),
		Limit:   limit,
		Offset:  offset,
	})
}

// ListEntityHistory returns every event for one transfer, group payment or pot
func (h *ActivityHandler) ListEntityHistory(c *gin.Context) {
	events, err := h.activity.ListEntityHistory(c.Request.Context(), c.Param("entity_id"))
	if err != nil {
		handleServiceError(c, err, "load history")
		return
	}
	sendList(c, responses.FromContractEvents(events))
}

func queryInt32(c *gin.Context, key string) (int32, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

package api

import (
	"net/http"

	reqdto "turnera/internal/handler/dto/request"
	resdto "turnera/internal/handler/dto/response"
	"turnera/internal/handler/httperr"
	"turnera/internal/handler/middleware"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Replace working hours
// @Description Replace the provider's whole week; weekday names are normalized
// @Tags working-hours
// @Accept json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body []reqdto.WorkingHoursItem true "Working hours"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/working-hours [put]
func (h *ScheduleHandler) Replace(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	var items []reqdto.WorkingHoursItem
	if err := c.ShouldBindJSON(&items); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	inputs := make([]commands.WorkingHoursInput, len(items))
	for i, it := range items {
		inputs[i] = commands.WorkingHoursInput{Weekday: it.Weekday, Start: it.Start, End: it.End}
	}

	if err := h.cmds.ReplaceWorkingHours(c.Request.Context(), providerID, actorID, inputs); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List working hours
// @Tags working-hours
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} resdto.WorkingHoursResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/working-hours [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID format", nil)
		return
	}

	views, err := h.q.ListWorkingHours(c.Request.Context(), providerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkingHoursViews(views))
}

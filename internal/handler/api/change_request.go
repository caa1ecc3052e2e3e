package api

import (
	"errors"
	"net/http"

	reqdto "tournament-billing/internal/handler/dto/request"
	resdto "tournament-billing/internal/handler/dto/response"
	"tournament-billing/internal/handler/middleware"
	"tournament-billing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ChangeRequestHandler struct {
	requestCommands commands.RequestCommands
}

func NewChangeRequestHandler(requestCommands commands.RequestCommands) *ChangeRequestHandler {
	return &ChangeRequestHandler{
		requestCommands: requestCommands,
	}
}

// @Summary Process change requests
// @Description Resolve a batch of roster change requests; failed items do not abort the batch
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessRequestsRequest true "Batch decisions"
// @Success 200 {object} resdto.ProcessRequestsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /requests/process [post]
func (h *ChangeRequestHandler) ProcessRequests(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ProcessRequestsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.requestCommands.ProcessBatch(c.Request.Context(), act, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Permission denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBatchResult(result))
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type ActivityLogsHandler struct{ repo repository.ActivityLogRepository }

func NewActivityLogsHandler(repo repository.ActivityLogRepository) *ActivityLogsHandler {
	return &ActivityLogsHandler{repo: repo}
}

// List godoc
// @Summary      Listar registros de auditoria
// @Description  Retorna os registros de auditoria mais recentes.
// @Tags         activity-logs
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Quantidade de registros (default 100, máx 500)"
// @Success      200 {object} map[string]interface{}
// @Router       /v1/activity-logs [get]
func (h *ActivityLogsHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 100
	}
	entries, listErr := h.repo.List(c.Request.Context(), limit)
	if listErr != nil {
		respondError(c, listErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity_logs": entries})
}

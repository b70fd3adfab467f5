package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zugflow/zugflow-api/internal/httperr"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificativo non valido.")
		return 0, false
	}
	return uint(id), true
}

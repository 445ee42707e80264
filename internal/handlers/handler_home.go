package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/dto"
)

// getTest godoc
// @Summary Show the status of the API.
// @Description Liveness probe for the API group.
// @Tags root
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /test [get]
func getTest(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Success("Vinque API is running"))
}

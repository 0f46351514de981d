package handlers

import (
	"net/http"

	"staymate/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot of the backing stores.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

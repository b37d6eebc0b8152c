package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthcheck handles GET /healthcheck. Liveness only; it does not
// touch the database.
func Healthcheck(c *gin.Context) {
	data := gin.H{"message": "ok", "status": http.StatusOK}
	c.JSON(http.StatusOK, NewResponse(http.StatusOK, data, "Health check passed"))
}

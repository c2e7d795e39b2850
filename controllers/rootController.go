package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "CareLink API"})
}

// SetupRootRoute sets up the health root for the application
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight_tracker/internal/config"
)

// GetConfig exposes frontend integration keys. Nothing here is secret in
// any real sense.
func GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"googleApiKey":   config.GetEnv("GOOGLE_API_KEY", "default_key"),
		"fontAwesomeKey": config.GetEnv("FONTAWESOME_KEY", ""),
	})
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"evoxabackend/store"
)

// GetUsage dumps the whole usage table. No pagination or filtering.
func GetUsage(c *gin.Context) {
	usage, err := store.Usage.Load()
	if err != nil {
		log.Println("Usage error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, usage)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

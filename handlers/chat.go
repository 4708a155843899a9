package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"evoxabackend/services"
)

type ChatInput struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Treat an unreadable body like an empty message
		c.JSON(http.StatusOK, gin.H{"reply": services.FallbackReply})
		return
	}

	reply, tokens, err := services.Converse(c.Request.Context(), input.Message, input.UserID)
	if err != nil {
		log.Println("Chat error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if input.Message == "" {
		c.JSON(http.StatusOK, gin.H{"reply": reply})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":       reply,
		"tokens_used": tokens,
	})
}

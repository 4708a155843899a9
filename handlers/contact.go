package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"evoxabackend/services"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func Contact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	err := services.SubmitContact(input.Name, input.Email, input.Phone, input.Message)
	switch {
	case errors.Is(err, services.ErrMissingContactFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
	case err != nil:
		log.Println("Contact email error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"evoxabackend/config"
	"evoxabackend/handlers"
	"evoxabackend/services"
	"evoxabackend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	if err := store.Init(cfg); err != nil {
		log.Fatal("Failed to initialize store files: ", err)
	}

	services.Mail = services.NewMailSender(cfg)
	services.Completions = services.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	services.BaseURL = cfg.BaseURL
	services.OwnerEmail = cfg.OwnerEmail
	services.SlackWebhookURL = cfg.SlackWebhookURL

	log.Printf("Mail provider: %s, model: %s", cfg.MailProvider, cfg.OpenAIModel)

	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/signup", handlers.Signup)
	r.GET("/verify", handlers.Verify)
	r.POST("/login", handlers.Login)
	r.POST("/contact", handlers.Contact)
	r.POST("/chat", handlers.Chat)
	r.GET("/usage", handlers.GetUsage)
	r.GET("/health", handlers.Health)

	fmt.Println("Server starting on port " + cfg.Port)
	r.Run(":" + cfg.Port)
}

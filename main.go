package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/IanFindlay/nc-news/db"
	_ "github.com/IanFindlay/nc-news/docs"
	"github.com/IanFindlay/nc-news/routes"
	"github.com/IanFindlay/nc-news/store"
	"github.com/IanFindlay/nc-news/utils"
)

// @title NC News API
// @version 1.0
// @description REST API over a news-aggregator database: topics, articles, comments and users
// @BasePath /api
func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, reading configuration from the system environment")
	}

	database, err := db.Connect()
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}
	utils.LogSuccess("Database connection successful")

	r := routes.SetupRouter(store.New(database))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}

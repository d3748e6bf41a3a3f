package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const WelcomeMessage = "Welcome to Diet Diary"

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "API is running!"})
}

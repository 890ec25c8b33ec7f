package main

import (
	"os"

	"planit-api/core/logger"
	"planit-api/core/server"
)

// @title PlanIt API
// @version 1.0
// @description Event planning backend with guest management and seating charts
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := server.Run(); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

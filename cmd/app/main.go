package main

import (
	"appointly/config"
	"appointly/di"
	"appointly/shared/logger"
)

// @title Appointly API
// @version 1.0
// @description Appointment scheduling and booking service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

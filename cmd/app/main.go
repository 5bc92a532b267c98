package main

import (
	"stayeasy/config"
	"stayeasy/di"
	"stayeasy/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

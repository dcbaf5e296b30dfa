package main

import (
	"log"
	"os"
	"time"

	"ph-payroll/internal/app"
	"ph-payroll/internal/bootstrap"
	"ph-payroll/internal/middleware"
	"ph-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	sync, err := bootstrap.InitLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer sync()

	apperror.Init()

	r := gin.Default()
	r.Use(middleware.RequestID())

	if err := app.BuildApp(r); err != nil {
		zap.L().Fatal("build app failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)
}

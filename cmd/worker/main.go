package main

import (
	"log"

	"ph-payroll/internal/app"
	"ph-payroll/internal/bootstrap"
	"ph-payroll/internal/shared/apperror"

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

	if err := app.RunWorker(); err != nil {
		zap.L().Fatal("outbox worker exited", zap.Error(err))
	}
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/app"
)

//	@title			Storefront API
//	@version		1.0
//	@description	Telegram mini-app storefront

//	@securityDefinitions.apikey	TelegramInitData
//	@in							header
//	@name						X-Telegram-Init-Data
//	@description				Raw Telegram WebApp init data

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /api/auth/session as "Bearer <token>"

// @host		localhost:8080
// @BasePath	/
func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}

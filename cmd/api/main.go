package main

import (
	"os"
	"os/signal"
	"syscall"

	"PantryOS-Server/cmd/config"
	"PantryOS-Server/entities"
	"PantryOS-Server/internal/utils"
	"PantryOS-Server/pkg/logger"
	"PantryOS-Server/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine, the defaults below cover every variable.
	_ = godotenv.Load()
	utils.LoadConfig()

	logLevel := utils.GetEnv("APP_LOG_LEVEL", "info")
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       logLevel,
		Environment: utils.GetEnv("APP_ENV", "development"),
		ServiceName: "pantryos-server",
	}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	dataFile := utils.GetEnv("APP_DATA_FILE", "data/state.json")
	configFile := utils.GetEnv("APP_CONFIG_FILE", "data/config.json")
	host := utils.GetEnv("APP_HOST", "0.0.0.0")
	port := utils.GetEnv("APP_PORT", "8080")

	st := store.New(dataFile, log)
	defer st.Close()

	cfgStore, err := store.NewSettingsStore(configFile, entities.Settings{
		Culture:  utils.GetEnv("APP_CULTURE", "en"),
		Currency: utils.GetEnv("APP_CURRENCY", "USD"),
		Timezone: utils.GetEnv("APP_TIMEZONE", "UTC"),
		LogLevel: logLevel,
	}, log)
	if err != nil {
		log.Fatal("failed to open settings store", zap.Error(err))
	}

	app, err := config.NewApp(st, cfgStore)
	if err != nil {
		log.Fatal("failed to build application", zap.Error(err))
	}

	// An optional base path mounts the whole API under a URL prefix, for
	// deployments behind a shared reverse proxy.
	srv := app
	if basePath := utils.GetEnv("APP_BASE_PATH", ""); basePath != "" && basePath != "/" {
		srv = fiber.New()
		srv.Mount(basePath, app)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown error", zap.Error(err))
		}
	}()

	addr := host + ":" + port
	log.Info("starting pantryos-server",
		zap.String("address", addr),
		zap.String("data_file", dataFile),
		zap.String("config_file", configFile))
	if err := srv.Listen(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/DRSN-tech/storefront/internal/app"
	config "github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/spf13/pflag"
)

//	@title			Storefront API
//	@version		1.0
//	@description	Витрина товаров внешнего каталога: вход, список с фильтрами, карточка товара.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	envFile := pflag.String("env-file", "", "path to .env file (default: .env in working directory)")
	logLevel := pflag.String("log-level", "", "overrides LOG_LEVEL")
	pflag.Parse()

	bootLog, err := logger.NewZapLogger("info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(bootLog, *envFile)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}

	log, err := logger.NewZapLogger(level)
	if err != nil {
		bootLog.Errorf(err, "invalid log level")
		os.Exit(1)
	}
	defer logger.Sync(log)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		logger.Sync(log)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		logger.Sync(log)
		os.Exit(1)
	}
}

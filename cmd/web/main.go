package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ruthmoore/bastion/config"
	"github.com/ruthmoore/bastion/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	s := server.NewServer(server.NewInMemoryRoomStore(), logger)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(cfg.Addr, s)))
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Dev {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

package main

import (
	"context"
	"log"

	"tradesense/conf"
	"tradesense/internal/model/entity"
	"tradesense/pkg/cache"
	"tradesense/pkg/db"
	"tradesense/pkg/logger"

	"google.golang.org/genai"
)

func main() {
	// 加载配置文件
	if err := conf.LoadConfig("config.yaml"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appCfg := &conf.AppConfig

	logger.Init(appCfg.Log)
	defer logger.Sync()

	gdb := db.Init(db.NewConfig(
		appCfg.Db.Username,
		appCfg.Db.Password,
		appCfg.Db.Host,
		appCfg.Db.Port,
		appCfg.Db.DbName,
	))
	if err := gdb.AutoMigrate(
		&entity.Stock{},
		&entity.Position{},
		&entity.Trade{},
		&entity.Prediction{},
		&entity.WatchlistItem{},
		&entity.User{},
	); err != nil {
		logger.Fatalf("auto migrate failed: %v", err)
	}

	cache.InitRedis(appCfg.Redis)
	defer cache.CloseRedis()

	ctx := context.Background()
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: appCfg.Gemini.ApiKey,
	})
	if err != nil {
		logger.Fatalf("init gemini client failed: %v", err)
	}

	apiRouter := InitRouter(ctx, gdb, genaiClient)

	server := NewServer(appCfg)
	server.Run(apiRouter)
}

package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	httpadp "fieldops-backend/internal/adapter/http"
	"fieldops-backend/internal/adapter/middleware"
	"fieldops-backend/internal/adapter/repository/mysql"
	"fieldops-backend/internal/config"
	"fieldops-backend/internal/infrastructure/cache"
	"fieldops-backend/internal/infrastructure/db"
	"fieldops-backend/internal/usecase/changelist"
	visituc "fieldops-backend/internal/usecase/visit"
	"fieldops-backend/pkg/logger"
)

func main() {
	logger.Init()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	stores := mysql.NewStoreRepository(gdb)
	changeLists := mysql.NewChangeListRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	loader := visituc.NewLoader(stores)
	submitter := visituc.NewSubmitter(guow)
	clUC := changelist.NewUsecase(stores, changeLists)

	h := httpadp.NewHandler()
	visits := httpadp.NewVisitHandler(loader, submitter)
	lists := httpadp.NewChangeListHandler(clUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/stores/:store_id/visit-draft", visits.StartVisit)
	e.POST("/stores/:store_id/visits", visits.SubmitVisit, idemp)
	e.GET("/stores/:store_id/change-lists", lists.ListChangeLists)
	e.GET("/change-lists/:change_list_id", lists.GetChangeList)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

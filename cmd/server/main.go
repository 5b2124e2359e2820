package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"elevare/config"
	"elevare/database"
	"elevare/router"

	"elevare/entities"
	"elevare/pkg/ai"
	"elevare/pkg/notify"

	authCtrlImp "elevare/pkg/auth/controllerImp"
	healthCtrlImp "elevare/pkg/health/controllerImp"

	careerCtrlImp "elevare/pkg/career/controllerImp"
	"elevare/pkg/career/predictor"

	roadmapCtrlImp "elevare/pkg/roadmap/controllerImp"
	roadmapRepoImp "elevare/pkg/roadmap/repositoryImp"
	roadmapSvcImp "elevare/pkg/roadmap/serviceImp"

	resourceCtrlImp "elevare/pkg/resource/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) AI gateway (mock fallback when no key is configured)
	var llm ai.Client
	aiMode := "mock"
	if cfg.GeminiKey != "" {
		g, err := ai.NewGemini(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
		llm = g
		aiMode = "gemini"
	} else {
		llm = ai.NewMock()
	}

	// 5) Career predictor (mock fallback)
	var ml predictor.Client
	if cfg.MLApiURL != "" {
		ml = predictor.NewML(cfg.MLApiURL)
	} else {
		ml = predictor.NewMock()
	}

	// 6) Lifecycle event bus + log subscriber
	bus := notify.NewBus()
	for _, topic := range []string{roadmapSvcImp.TopicCompleted, roadmapSvcImp.TopicFailed} {
		ch, _ := bus.Subscribe(topic)
		go func(topic string, ch <-chan notify.Event) {
			for ev := range ch {
				if m, ok := ev.Data.(*entities.Roadmap); ok {
					log.Printf("[roadmap] %s id=%d career=%q steps=%d", topic, m.RoadmapID, m.Career, len(m.Steps))
				}
			}
		}(topic, ch)
	}

	// 7) Repos/Services/Controllers
	rRepo := roadmapRepoImp.New(db)
	rSvc := roadmapSvcImp.NewRoadmapService(llm, rRepo, bus,
		time.Duration(cfg.GenerateTimeoutSec)*time.Second,
		time.Duration(cfg.StreamTimeoutSec)*time.Second)
	rCtrl := roadmapCtrlImp.New(rSvc)

	cCtrl := careerCtrlImp.New(ml)
	resCtrl := resourceCtrlImp.New()
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, aiMode)

	// 8) Router
	r := router.New(e, cCtrl, rCtrl, resCtrl, authCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

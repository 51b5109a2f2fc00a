package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"towergrow/config"
	"towergrow/database"
	"towergrow/router"

	"towergrow/pkg/ai"
	"towergrow/pkg/catalog"
	"towergrow/pkg/engagement"
	appMiddleware "towergrow/pkg/middleware"

	authCtrlImp "towergrow/pkg/auth/controllerImp"
	healthCtrlImp "towergrow/pkg/health/controllerImp"

	catalogCtrlImp "towergrow/pkg/catalog/controllerImp"

	towerCtrlImp "towergrow/pkg/tower/controllerImp"
	towerRepoImp "towergrow/pkg/tower/repositoryImp"
	towerSvcImp "towergrow/pkg/tower/serviceImp"

	scanCtrlImp "towergrow/pkg/scan/controllerImp"
	scanSvcImp "towergrow/pkg/scan/serviceImp"

	labCtrlImp "towergrow/pkg/lab/controllerImp"
	labRepoImp "towergrow/pkg/lab/repositoryImp"

	actCtrlImp "towergrow/pkg/activity/controllerImp"
	actRepoImp "towergrow/pkg/activity/repositoryImp"
	actSvcImp "towergrow/pkg/activity/serviceImp"

	rewardsCtrlImp "towergrow/pkg/progress/controllerImp"

	notifCtrlImp "towergrow/pkg/notification/controllerImp"
	notifRepoImp "towergrow/pkg/notification/repositoryImp"
	notifSvcImp "towergrow/pkg/notification/serviceImp"

	guideCtrlImp "towergrow/pkg/guides/controllerImp"
	guideEmbedder "towergrow/pkg/guides/embedder"
	guideRepoImp "towergrow/pkg/guides/repositoryImp"
	guideSvcImp "towergrow/pkg/guides/serviceImp"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q: %v", cfg.Timezone, err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Validator = appMiddleware.NewAppValidator()

	crops, err := catalog.Load(cfg.CropsCSV, cfg.CropsXLSX)
	if err != nil {
		log.Fatalf("crop catalog: %v", err)
	}

	var identifier ai.Client
	if cfg.PlantIDAPIKey != "" {
		identifier = ai.NewPlantID(cfg.PlantIDEndpoint, cfg.PlantIDAPIKey)
	} else {
		slog.Warn("PLANTID_API_KEY not set, scans use the mock identifier")
		identifier = ai.NewMock()
	}

	slotRepo := towerRepoImp.New(db)
	statsRepo := actRepoImp.New(db)
	labRepo := labRepoImp.New(db)
	notifRepo := notifRepoImp.New(db)

	engine := engagement.New(now, nil)
	store := notifSvcImp.New(notifRepo, slotRepo, statsRepo, labRepo, engine, now)
	go store.Run(context.Background())

	towerSvc := towerSvcImp.New(slotRepo, crops, cfg.SlotPoolSize, store, now)
	actSvc := actSvcImp.New(statsRepo, store, now)
	scanSvc := scanSvcImp.New(slotRepo, identifier, store, now)

	var emb *guideEmbedder.Client
	if cfg.EmbEndpoint != "" {
		emb = guideEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}
	guideSvc := guideSvcImp.New(guideRepoImp.New(db), emb)

	r := router.New(
		e,
		cfg.StrictAuth,
		catalogCtrlImp.New(crops),
		towerCtrlImp.New(towerSvc),
		scanCtrlImp.New(scanSvc),
		labCtrlImp.New(labRepo, actSvc),
		actCtrlImp.New(actSvc),
		rewardsCtrlImp.New(slotRepo, actSvc),
		notifCtrlImp.New(store),
		guideCtrlImp.New(guideSvc, cfg.GuideDomains, cfg.GuideMaxBytes),
		authCtrlImp.NewAuthController(),
		healthCtrlImp.NewHealthCtrl(db),
	)

	slog.Info("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package app

import (
	drawAPI "slot_machine/internal/api/draw"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/metrics"
	"slot_machine/internal/middleware"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/draw_stats_repo"
	"slot_machine/internal/service"
	"slot_machine/internal/service/draw"
	"slot_machine/internal/worker"
	"slot_machine/pkg/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const appName = "slot_machine"

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	// Metrics
	metrics *metrics.Metrics

	// Draw bits
	drawCfgPath   string
	drawCfg       config.DrawConfig
	evaluator     *draw.Evaluator
	queue         *worker.Queue
	drawStatsRepo repository.DrawStatsRepository
	drawServ      service.DrawService
	drawHand      *drawAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(drawCfgPath string) *ServiceProvider {
	return &ServiceProvider{drawCfgPath: drawCfgPath}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		cfg := sp.LogCfg()
		sp.log = logger.New(logger.Config{
			Level: cfg.Level(),
			App:   appName,
			Dir:   cfg.Dir(),
			File:  cfg.File(),
			Prod:  cfg.Production(),
		})
	}
	return sp.log
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New()
	}
	return sp.metrics
}

func (sp *ServiceProvider) DrawCfg() config.DrawConfig {
	if sp.drawCfg == nil {
		cfg, err := env.NewDrawConfigFromYAML(sp.drawCfgPath)
		if err != nil {
			panic("failed to get draw config: " + err.Error())
		}
		sp.drawCfg = cfg
	}
	return sp.drawCfg
}

func (sp *ServiceProvider) Evaluator() *draw.Evaluator {
	if sp.evaluator == nil {
		e, err := draw.NewEvaluator(sp.DrawCfg().Symbols(), draw.NewSource(sp.DrawCfg().Seed()))
		if err != nil {
			panic("failed to create evaluator: " + err.Error())
		}
		sp.evaluator = e
	}
	return sp.evaluator
}

func (sp *ServiceProvider) Queue() *worker.Queue {
	if sp.queue == nil {
		q, err := worker.New(sp.Logger(), sp.DrawCfg().MaxWaiting())
		if err != nil {
			panic("failed to create worker queue: " + err.Error())
		}
		sp.queue = q
	}
	return sp.queue
}

func (sp *ServiceProvider) DrawStatsRepository() repository.DrawStatsRepository {
	if sp.drawStatsRepo == nil {
		sp.drawStatsRepo = draw_stats_repo.NewDrawStatsRepository(sp.DrawCfg().StatsWindow())
	}
	return sp.drawStatsRepo
}

func (sp *ServiceProvider) DrawService() service.DrawService {
	if sp.drawServ == nil {
		sp.drawServ = draw.NewDrawService(
			sp.Evaluator(),
			sp.Queue(),
			sp.DrawStatsRepository(),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.drawServ
}

func (sp *ServiceProvider) DrawHandler() *drawAPI.Handler {
	if sp.drawHand == nil {
		sp.drawHand = drawAPI.NewHandler(drawAPI.HandlerDeps{
			Serv:     sp.DrawService(),
			Messages: sp.DrawCfg().Messages(),
			Log:      sp.Logger(),
		})
	}
	return sp.drawHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.RequestID)
		r.Use(chiMiddleware.RealIP)
		r.Use(middleware.Logger(sp.Logger()))
		r.Use(chiMiddleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Draw endpoints
		drawHandler := sp.DrawHandler()
		r.Route("/draw", func(rr chi.Router) {
			rr.Get("/", drawHandler.Screen)
			rr.Post("/spin", drawHandler.Spin)
			rr.Get("/symbols", drawHandler.Symbols)
			rr.Get("/stats", drawHandler.Stats)
		})

		r.Method("GET", "/metrics", sp.Metrics().Handler())

		sp.router = r
	}

	return sp.router
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/ecoroute/api"
	"github.com/kilianp07/ecoroute/api/predict"
	"github.com/kilianp07/ecoroute/api/route"
	"github.com/kilianp07/ecoroute/config"
	"github.com/kilianp07/ecoroute/core/adjust"
	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
	"github.com/kilianp07/ecoroute/core/prediction"
	"github.com/kilianp07/ecoroute/core/regression"
	"github.com/kilianp07/ecoroute/core/routing"
	"github.com/kilianp07/ecoroute/infra/logger"
	"github.com/kilianp07/ecoroute/infra/metrics"
	"github.com/kilianp07/ecoroute/infra/osrm"
	"github.com/kilianp07/ecoroute/internal/eventbus"
)

// Service wires the prediction engine, the route planner and the HTTP server.
type Service struct {
	Engine *prediction.Engine

	cfg         *config.Config
	echo        *echo.Echo
	predictions *eventbus.TypedBus[coremetrics.PredictionEvent]
	comparisons *eventbus.TypedBus[coremetrics.ComparisonEvent]
	sink        coremetrics.PredictionSink
	log         logger.Logger
}

// New loads the model artifact and builds every component from cfg. A missing
// or invalid artifact is returned as an error.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")

	reg, err := regression.Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	logg.Infof("model loaded from %s (%d features)", cfg.Model.Path, reg.NumFeatures())

	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	predictions := eventbus.NewTyped[coremetrics.PredictionEvent]()
	comparisons := eventbus.NewTyped[coremetrics.ComparisonEvent]()
	if cfg.Metrics.PrometheusAddr != "" {
		dropped := func() uint64 { return predictions.Dropped() + comparisons.Dropped() }
		if err := metrics.RegisterDropCounter(nil, dropped); err != nil {
			coremetrics.Close(sink)
			return nil, fmt.Errorf("drop counter: %w", err)
		}
	}
	engine, err := prediction.NewEngine(reg, adjust.New(cfg.Adjust), predictions, logger.New("prediction"))
	if err != nil {
		coremetrics.Close(sink)
		return nil, fmt.Errorf("prediction engine: %w", err)
	}

	routes := []api.Routes{predict.NewHandler(engine, logger.New("predict-handler"))}
	if cfg.Routing.Disabled {
		logg.Infof("route comparison disabled")
	} else {
		planner := routing.NewPlanner(osrm.NewClient(cfg.Routing.OSRM), engine, comparisons, logger.New("planner"))
		routes = append(routes, route.NewHandler(planner, logger.New("route-handler")))
	}
	e := api.NewServer(logger.New("http"), routes...)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout()

	return &Service{
		Engine:      engine,
		cfg:         cfg,
		echo:        e,
		predictions: predictions,
		comparisons: comparisons,
		sink:        sink,
		log:         logg,
	}, nil
}

// Handler exposes the HTTP API.
func (s *Service) Handler() http.Handler { return s.echo }

// Run serves the API and the optional metrics endpoint until ctx is canceled,
// then shuts the HTTP server down gracefully.
func (s *Service) Run(ctx context.Context) error {
	colCtx, stop := context.WithCancel(ctx)
	defer stop()
	done := metrics.StartEventCollector(colCtx, s.predictions, s.comparisons, s.sink, logger.New("metrics-collector"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("listening on %s", s.cfg.Server.Addr)
		if err := s.echo.Start(s.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		g.Go(func() error {
			if err := metrics.StartPromServer(gctx, addr); err != nil {
				return fmt.Errorf("prom server: %w", err)
			}
			return nil
		})
	}

	err := g.Wait()
	stop()
	<-done
	return err
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.predictions.Close()
	s.comparisons.Close()
	coremetrics.Close(s.sink)
	return nil
}

package router

import (
	"net/http"
	"time"

	_ "pet-adoption-api/docs"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/applications"
	"pet-adoption-api/internal/domain/medicalrecords"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/platform/metrics"
	"pet-adoption-api/internal/platform/respond"
	"pet-adoption-api/internal/ports/recordstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	apiName    = "Pet Adoption API"
	apiVersion = "1.0.0"
)

type Options struct {
	// Si viene nil se usa el store en memoria.
	Gateway recordstore.Gateway

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Dev expone el stack en las respuestas de error.
	Dev bool
}

func NewRouter(opts Options) http.Handler {
	gw := opts.Gateway
	if gw == nil {
		gw = memory.New()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	eh := respond.NewErrorHandler(log, opts.Dev)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(eh))
	r.Use(m.Instrument)

	r.NotFound(eh.NotFound)
	r.MethodNotAllowed(eh.NotFound)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{
			"message": apiName,
			"version": apiVersion,
		})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	petsSvc := pets.NewService(pets.NewRepository(gw))
	recordsSvc := medicalrecords.NewService(medicalrecords.NewRepository(gw), petsSvc)
	appsSvc := applications.NewService(applications.NewRepository(gw), petsSvc, gw,
		applications.WithLogger(log),
		applications.WithObserver(m),
	)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		api.Route("/pets", func(pr chi.Router) {
			pets.RegisterRoutes(pr, petsSvc, eh)
			applications.RegisterPetRoutes(pr, appsSvc, eh)
			medicalrecords.RegisterPetRoutes(pr, recordsSvc, eh)
		})
		api.Route("/applications", func(ar chi.Router) {
			applications.RegisterRoutes(ar, appsSvc, eh)
		})
		api.Route("/medical-records", func(mr chi.Router) {
			medicalrecords.RegisterRoutes(mr, recordsSvc, eh)
		})
	})

	return r
}

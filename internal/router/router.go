package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption-welfare/internal/docs"

	"pet-adoption-welfare/internal/adapters/notify/logsink"
	mem "pet-adoption-welfare/internal/adapters/storage/memory"
	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/distress"
	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/domain/shelters"
	"pet-adoption-welfare/internal/domain/welfare"
	"pet-adoption-welfare/internal/middleware"
	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/platform/metrics"
	"pet-adoption-welfare/internal/ports/auth"
	"pet-adoption-welfare/internal/ports/notify"
)

// Backend es el almacenamiento completo: memory, postgres o sqlite.
type Backend interface {
	Pets() pets.Repository
	Shelters() shelters.Repository
	Adoptions() adoptions.Repository
	Welfare() welfare.Repository
	Distress() distress.Repository
	adoptions.TxRunner
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcionales: sin Backend usa in-memory; sin Notifier solo loguea.
	Backend  Backend
	Notifier notify.Notifier
	Logger   logger.Logger
	Metrics  *metrics.Recorder

	EscalationOptions []escalation.Option
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	backend := opts.Backend
	if backend == nil {
		backend = mem.NewStore()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = logsink.New(log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	escOpts := append([]escalation.Option{escalation.WithMetrics(opts.Metrics)}, opts.EscalationOptions...)
	escalator := escalation.NewEscalator(notifier, log, escOpts...)

	// Services por módulo
	sheltersSvc := shelters.NewService(backend.Shelters())
	petsSvc := pets.NewService(backend.Pets())
	adoptionsSvc := adoptions.NewService(backend.Adoptions(), petsSvc, backend).
		WithEscalator(escalator).
		WithMetrics(opts.Metrics)
	welfareSvc := welfare.NewService(backend.Welfare(), adoptionsSvc, petsSvc).
		WithEscalator(escalator).
		WithMetrics(opts.Metrics).
		WithLogger(log)
	distressSvc := distress.NewService(backend.Distress(), sheltersSvc).
		WithEscalator(escalator)

	// Rutas por módulo
	shelters.RegisterRoutes(r, sheltersSvc)
	pets.RegisterRoutes(r, petsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc, log)
	welfare.RegisterRoutes(r, welfareSvc, log)
	distress.RegisterRoutes(r, distressSvc, log)

	return r
}

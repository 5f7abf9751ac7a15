package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "birds-api/docs"
	mem "birds-api/internal/adapters/storage/memory"
	pg "birds-api/internal/adapters/storage/postgres"
	"birds-api/internal/domain/birds"
	"birds-api/internal/middleware"
	"birds-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, using in-memory store", map[string]any{"error": err.Error()})
			} else if err := pg.Migrate(opened); err != nil {
				log.Warn("migrations failed, using in-memory store", map[string]any{"error": err.Error()})
				_ = opened.Close()
			} else {
				db = opened
			}
		}
	}

	var birdRepo birds.Repository
	if db != nil {
		birdRepo = pg.NewBirdsRepo(db)
	} else {
		birdRepo = mem.NewBirdRepo()
	}

	svc := birds.NewService(birdRepo)
	birds.RegisterRoutes(r, svc)

	return r
}

package router

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	mem "github.com/vecear/Catlog-sub000/internal/adapters/storage/memory"
	pg "github.com/vecear/Catlog-sub000/internal/adapters/storage/postgres"
	lite "github.com/vecear/Catlog-sub000/internal/adapters/storage/sqlite"
	"github.com/vecear/Catlog-sub000/internal/domain/care"
	"github.com/vecear/Catlog-sub000/internal/domain/pets"
	"github.com/vecear/Catlog-sub000/internal/middleware"
	"github.com/vecear/Catlog-sub000/internal/ports/auth"

	_ "github.com/vecear/Catlog-sub000/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil enables dev mode (X-Debug-User-ID)

	// Storage selection: DB wins, then SQLitePath, then in-memory.
	DB         *sql.DB
	SQLitePath string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID"},
		MaxAge:         300,
	}))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo  pets.Repository
		careRepo care.Repository
	)

	// Storage fallback for dev/handoff: explicit DB, then env DSN, then
	// sqlite path, then in-memory.
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				slog.Warn("postgres unavailable, falling back", "error", err)
			}
		}
	}

	switch {
	case db != nil:
		petRepo = pg.NewPetsRepo(db)
		careRepo = pg.NewCareRepo(db)
	case opts.SQLitePath != "":
		sdb, err := lite.Open(opts.SQLitePath)
		if err != nil {
			slog.Warn("sqlite unavailable, using in-memory storage", "error", err)
			petRepo = mem.NewPetRepo()
			careRepo = mem.NewCareRepo()
			break
		}
		petRepo = lite.NewPetsRepo(sdb)
		careRepo = lite.NewCareRepo(sdb)
	default:
		petRepo = mem.NewPetRepo()
		careRepo = mem.NewCareRepo()
	}

	petsSvc := pets.NewService(petRepo)
	careSvc := care.NewService(careRepo)

	pets.RegisterRoutes(r, petsSvc)
	care.RegisterRoutes(r, careSvc, petsSvc)

	return r
}

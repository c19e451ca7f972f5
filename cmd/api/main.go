package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/text/language"

	"github.com/kiranakart/kirana-backend/internal/modules/auth"
	"github.com/kiranakart/kirana-backend/internal/modules/cart"
	"github.com/kiranakart/kirana-backend/internal/modules/catalog"
	"github.com/kiranakart/kirana-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	// ── Storage ─────────────────────────────────────────────
	var (
		catalogRepo catalog.Repository
		cartRepo    cart.Repository
		userRepo    user.Repository
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		log.Println("connected to Postgres")

		catalogRepo = catalog.NewPostgresRepository(db)
		cartRepo = cart.NewPostgresRepository(db)
		userRepo = user.NewPostgresRepository(db)
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			log.Fatal(err)
		}
		log.Printf("no DATABASE_URL, using JSON stores under %s", dataDir)

		catalogRepo = catalog.NewJSONStore(filepath.Join(dataDir, "products.json"))
		cartRepo = cart.NewJSONStore(filepath.Join(dataDir, "cart.json"))
		userRepo = user.NewJSONStore(filepath.Join(dataDir, "users.json"))
	}

	collation := language.Und
	if locale := os.Getenv("CATALOG_LOCALE"); locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			log.Fatalf("bad CATALOG_LOCALE %q: %v", locale, err)
		}
		collation = tag
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Phase 1: Identity ───────────────────────────────────
	authService := auth.NewService(userRepo, []byte(jwtSecret))
	auth.NewHandler(authService).RegisterRoutes(router)
	admin := auth.Middleware(authService)

	userService := user.NewService(userRepo)
	user.NewHandler(userService, admin).RegisterRoutes(router)

	// ── Phase 2: Catalog ────────────────────────────────────
	catalogService := catalog.NewService(catalogRepo, collation)
	catalog.NewHandler(catalogService, admin).RegisterRoutes(router)

	// ── Phase 3: Cart ───────────────────────────────────────
	cartService := cart.NewService(cartRepo, catalogService)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Kirana API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

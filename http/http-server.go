package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/handlewall/backend/admin"
	"github.com/handlewall/backend/admin/auth"
	adminhttp "github.com/handlewall/backend/admin/http"
	"github.com/handlewall/backend/filestore"
	"github.com/handlewall/backend/logger"
	"github.com/handlewall/backend/subm"
	submhttp "github.com/handlewall/backend/subm/http"
)

type Config struct {
	AllowedOrigins []string
	LogLevel       slog.Level
	Env            string
	MaxUploadBytes int64
}

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	cfg Config,
	adminSrvc *admin.AdminSrvc,
	submSrvc subm.SubmSrvcClient,
	files *filestore.FileStore,
) *HttpServer {
	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("handlewall", httplog.Options{
		JSON:             cfg.Env != "dev",
		LogLevel:         cfg.LogLevel,
		Concise:          true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"service": "handlewall",
			"env":     cfg.Env,
		},
	})

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httplog.RequestLogger(httpLogger))
	router.Use(logger.Middleware)
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Server is running!"))
	})
	router.Get("/"+filestore.RefPrefix+"/{name}", files.ServeFile)

	adminhttp.NewAdminHttpHandler(adminSrvc).RegisterRoutes(router)
	submhttp.NewSubmHttpHandler(submSrvc, files, cfg.MaxUploadBytes).
		RegisterRoutes(router, auth.RequireAdmin(adminSrvc))

	return &HttpServer{router: router}
}

func (s *HttpServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

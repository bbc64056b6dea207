package rest

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter mounts the attempt API, the contact endpoint and the question
// images under imageDir.
func NewRouter(h *Handler, logger *zap.Logger, allowedOrigins []string, imageDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/contact", h.Contact)

		r.Route("/attempts", func(r chi.Router) {
			r.Post("/", h.CreateAttempt)

			r.Route("/{attemptID}", func(r chi.Router) {
				r.Get("/", h.GetAttempt)
				r.Post("/select", h.Select)
				r.Post("/confirm", h.Confirm)
				r.Post("/advance", h.Advance)
				r.Post("/restart", h.Restart)
			})
		})
	})

	if imageDir != "" {
		r.With(imagesOnly).Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(imageDir))))
	}

	return r
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// imagesOnly keeps the image route from exposing the question pool or
// directory listings that live next to the images.
func imagesOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !imageExtensions[strings.ToLower(path.Ext(r.URL.Path))] {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}

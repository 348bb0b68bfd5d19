package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/Umami/pkg/i18n"
	"droscher.com/Umami/pkg/integrations"
	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/preferences"
	"droscher.com/Umami/pkg/server/api"
)

var ErrInvalidInput = errors.New("bad request")

type Server struct {
	catalog     integrations.Catalog
	preferences *preferences.Store
	translator  *i18n.Translator
	logger      *zap.Logger
}

func NewServer(catalog integrations.Catalog, store *preferences.Store, translator *i18n.Translator, logger *zap.Logger) *Server {
	return &Server{catalog: catalog, preferences: store, translator: translator, logger: logger}
}

// Routes mounts the catalog and preference endpoints under /api.
func (s *Server) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", s.healthHandler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/sake", s.sakeListHandler())
		r.Get("/sake/{id}", s.sakeDetailHandler())
		r.Get("/breweries", s.breweryListHandler())
		r.Get("/breweries/{id}", s.breweryDetailHandler())
		r.Get("/breweries/{id}/sake", s.brewerySakeHandler())
		r.Get("/food-pairings", s.foodPairingsHandler())
		r.Get("/stats", s.statsHandler())
		r.Get("/classifications", s.classificationsHandler())
		r.Get("/prefectures", s.prefecturesHandler())

		r.Get("/favorites", s.favoritesHandler())
		r.Get("/favorites/{id}", s.favoriteHandler())
		r.Post("/favorites/{id}", s.toggleFavoriteHandler())
		r.Get("/language", s.languageHandler())
		r.Put("/language", s.setLanguageHandler())
		r.Get("/strings", s.stringsHandler())
	})

	return router
}

func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// language resolves the display language for a request: a valid ?lang wins over the stored preference.
func (s *Server) language(r *http.Request) model.Language {
	if code := r.URL.Query().Get("lang"); len(code) > 0 {
		if lang, found := model.ParseLanguage(code); found {
			return lang
		}
	}

	return s.preferences.Language()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

// writeCatalogFailure reports an unreachable or misbehaving catalog as a localized, retryable 502.
func (s *Server) writeCatalogFailure(w http.ResponseWriter, r *http.Request, operation string, err error) {
	s.logger.Error("catalog request failed", zap.String("operation", operation), zap.Error(err))

	lang := s.language(r)
	s.writeJSON(w, http.StatusBadGateway, api.Error{
		Error: s.translator.Get(lang, i18n.KeyErrorLoading),
		Retry: s.translator.Get(lang, i18n.KeyRetry),
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		s.logger.Debug("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapped.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

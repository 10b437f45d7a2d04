package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"fsanano/rest-client/internal/model"
)

// ItemClient is the backend client the /api/client routes forward to.
type ItemClient interface {
	GetCallObject(ctx context.Context, query string) (model.Item, error)
	GetCallList(ctx context.Context) ([]model.Item, error)
	PostCall(ctx context.Context, query string) (model.Item, error)
	ExchangeCall(ctx context.Context, token string) ([]model.Item, error)
}

type SearchClient interface {
	SearchItems(ctx context.Context, query string) ([]model.ShoppingItem, error)
}

type Handler struct {
	router *chi.Mux
	items  ItemClient
	search SearchClient
	log    *zap.Logger
}

func NewHandler(items ItemClient, search SearchClient, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}

	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	h := &Handler{
		router: router,
		items:  items,
		search: search,
		log:    log,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})

	h.router.Route("/api", func(r chi.Router) {
		r.Get("/search", h.SearchItems)

		r.Route("/client", func(r chi.Router) {
			r.Get("/get-call-obj", h.GetCallObject)
			r.Get("/get-call-list", h.GetCallList)
			r.Get("/post-call", h.PostCall)
			r.Get("/exchange-call", h.ExchangeCall)
		})
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

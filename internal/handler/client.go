package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"fsanano/rest-client/internal/apperr"
)

func (h *Handler) GetCallObject(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetCallObject(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) GetCallList(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.GetCallList(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) PostCall(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.PostCall(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) ExchangeCall(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{
			Kind:  string(apperr.KindInvalidArgument),
			Error: "missing bearer token",
		})
		return
	}

	items, err := h.items.ExchangeCall(r.Context(), token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) SearchItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{
			Kind:  string(apperr.KindInvalidArgument),
			Error: "query is required",
		})
		return
	}

	items, err := h.search.SearchItems(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

// bearerToken accepts both "Bearer <token>" and a bare token. A header
// holding only the scheme yields "".
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

type errorBody struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperr.KindNotImplemented:
		status = http.StatusNotImplemented
	case apperr.KindTransport, apperr.KindMalformed:
		status = http.StatusBadGateway
	}

	h.log.Error("upstream call failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)

	if kind == "" {
		kind = "internal"
	}
	h.writeJSON(w, status, errorBody{Kind: string(kind), Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", zap.Int("status", status), zap.Error(err))
	}
}

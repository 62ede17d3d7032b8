package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// CatalogReader is the read side of the template catalog.
type CatalogReader interface {
	Template(id domain.ItemID) (*domain.Template, bool)
	Buffs(name string) ([]domain.Buff, bool)
	Suggest(id domain.ItemID) (domain.ItemID, bool)
}

// BuffListResponse is the body of a buff list lookup
type BuffListResponse struct {
	Name  string        `json:"name"`
	Buffs []domain.Buff `json:"buffs"`
}

// CatalogHandler serves template and buff lookups from a cache of
// rendered responses.
type CatalogHandler struct {
	catalog CatalogReader
	cache   *responseCache
}

// NewCatalogHandler creates a CatalogHandler caching up to cacheSize
// responses for ttl.
func NewCatalogHandler(cat CatalogReader, cacheSize int, ttl time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		cache:   newResponseCache(cacheSize, ttl),
	}
}

// HandleGetTemplate returns the template with the id in the URL.
func (h *CatalogHandler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id := domain.ItemID(chi.URLParam(r, ParamTemplateID))
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingParamErr)
		return
	}

	h.serveCached(w, cacheKeyTemplate+string(id), func() (int, interface{}) {
		tpl, ok := h.catalog.Template(id)
		if !ok {
			logger.FromContext(r.Context()).Debug(LogMsgTemplateNotFound, "id", id)
			status, msg := mapErrorToResponse(fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, id))
			resp := ErrorResponse{Error: msg}
			if near, ok := h.catalog.Suggest(id); ok {
				resp.Suggestion = string(near)
			}
			return status, resp
		}
		return http.StatusOK, DataResponse{Data: tpl}
	})
}

// HandleGetBuffs returns the buff list with the name in the URL.
func (h *CatalogHandler) HandleGetBuffs(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamBuffName)
	if name == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingParamErr)
		return
	}

	h.serveCached(w, cacheKeyBuffs+name, func() (int, interface{}) {
		buffs, ok := h.catalog.Buffs(name)
		if !ok {
			logger.FromContext(r.Context()).Debug(LogMsgBuffsNotFound, "name", name)
			status, msg := mapErrorToResponse(ErrBuffsNotFound)
			return status, ErrorResponse{Error: msg}
		}
		if buffs == nil {
			buffs = []domain.Buff{}
		}
		return http.StatusOK, DataResponse{Data: BuffListResponse{Name: name, Buffs: buffs}}
	})
}

// serveCached writes the cached response for key, rendering and storing it
// with render on a miss.
func (h *CatalogHandler) serveCached(w http.ResponseWriter, key string, render func() (int, interface{})) {
	if entry, ok := h.cache.Get(key); ok {
		w.Header().Set(HeaderCache, CacheHit)
		respondRaw(w, entry.Status, entry.Body)
		return
	}

	status, payload := render()
	body, err := encodeJSON(payload)
	if err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	h.cache.Set(key, status, body)
	w.Header().Set(HeaderCache, CacheMiss)
	respondRaw(w, status, body)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/isamardev/graphify/internal/assets"
	"github.com/isamardev/graphify/internal/cache"
	"github.com/isamardev/graphify/internal/config"
	"github.com/isamardev/graphify/internal/db"
	"github.com/isamardev/graphify/internal/middleware"
	"github.com/isamardev/graphify/internal/store"
	"github.com/isamardev/graphify/internal/validation"
)

// Server carries the shared dependencies for the content and admin
// handlers. Cols is nil in dev mode; Local is the demo store used instead.
type Server struct {
	Cfg     *config.Config
	Cols    *db.Collections
	Val     *validation.Validator
	Log     *slog.Logger
	Cache   cache.Cache
	Storage *assets.Storage
	Local   *store.Store
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

// resolveImage expands a stored image path into a fetchable URL.
func (s *Server) resolveImage(path string) string {
	return assets.ResolveImageURL(path, s.Cfg.AssetBase)
}

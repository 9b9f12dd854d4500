package leads

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/isamardev/graphify/internal/assets"
	"github.com/isamardev/graphify/internal/httpx"
	"github.com/isamardev/graphify/internal/middleware"
	"github.com/isamardev/graphify/internal/transport"
	"github.com/isamardev/graphify/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
	storage *assets.Storage
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, storage *assets.Storage) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
		storage: storage,
	}
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateContactRequest
	if isMultipart(r) {
		form, path, ok := h.readLeadForm(w, r, "reference_file")
		if !ok {
			return
		}
		req = CreateContactRequest{
			Name:            form("name"),
			Email:           form("email"),
			Phone:           form("phone"),
			BusinessType:    form("business_type"),
			ProjectBudget:   form("project_budget"),
			ProjectTimeline: form("project_timeline"),
			ProjectDetail:   form("project_detail"),
			ReferenceFile:   path,
		}
	} else if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	contact, err := h.service.CreateContact(ctx, req)
	if err != nil {
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	go func(created Contact) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyContact(notifyCtx, created); err != nil {
			h.log.Warn("contact create: notification failed",
				slog.String("contact_id", created.ID),
				slog.String("error", err.Error()),
			)
		}
	}(contact)

	log.Info("contact create: ok", slog.String("contact_id", contact.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "contact submitted",
		"id":      contact.ID,
	})
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateQuoteRequest
	if isMultipart(r) {
		form, path, ok := h.readLeadForm(w, r, "reference_image")
		if !ok {
			return
		}
		req = CreateQuoteRequest{
			Name:               form("name"),
			Email:              form("email"),
			Phone:              form("phone"),
			ProjectType:        form("project_type"),
			BudgetRange:        form("budget_range"),
			PreferredStyle:     form("preferred_style"),
			WallDimension:      form("wall_dimension"),
			ProjectDeadline:    form("project_deadline"),
			ProjectDescription: form("project_description"),
		}
		if path != "" {
			req.ReferenceImage = path
		} else if csv := form("reference_image"); csv != "" {
			req.ReferenceImage = csv
		}
	} else if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("quote create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("quote create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	quote, err := h.service.CreateQuote(ctx, req)
	if err != nil {
		log.Error("quote create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	go func(created Quote) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyQuote(notifyCtx, created); err != nil {
			h.log.Warn("quote create: notification failed",
				slog.String("quote_id", created.ID),
				slog.String("error", err.Error()),
			)
		}
	}(quote)

	log.Info("quote create: ok", slog.String("quote_id", quote.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "quote submitted",
		"id":      quote.ID,
	})
}

func (h *Handler) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListContacts(ctx, limit, offset)
	if err != nil {
		log.Error("admin contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contacts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminGetContact(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin contacts get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	contact, err := h.service.GetContactByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin contacts get: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact not found", nil)
			return
		}
		log.Error("admin contacts get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contacts get: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, contact)
}

func (h *Handler) AdminListQuotes(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin quotes list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListQuotes(ctx, limit, offset)
	if err != nil {
		log.Error("admin quotes list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin quotes list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminGetQuote(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin quotes get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	quote, err := h.service.GetQuoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin quotes get: not found", slog.String("quote_id", id))
			transport.WriteError(w, http.StatusNotFound, "quote not found", nil)
			return
		}
		log.Error("admin quotes get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin quotes get: ok", slog.String("quote_id", id))
	transport.WriteJSON(w, http.StatusOK, quote)
}

// readLeadForm parses a multipart intake form, saving an uploaded file
// under fileKey when present. The returned closure reads trimmed text
// fields.
func (h *Handler) readLeadForm(w http.ResponseWriter, r *http.Request, fileKey string) (func(string) string, string, bool) {
	log := h.logWithRequest(r)
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			log.Warn("lead create: invalid multipart form")
			transport.WriteError(w, http.StatusBadRequest, "invalid form", nil)
			return nil, "", false
		}
	}

	form := func(key string) string {
		return strings.TrimSpace(r.FormValue(key))
	}

	path := ""
	if file, header, err := r.FormFile(fileKey); err == nil {
		saved, err := h.storage.Save(file, header)
		if err != nil {
			log.Error("lead create: upload error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
			return nil, "", false
		}
		path = saved
	}
	return form, path, true
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

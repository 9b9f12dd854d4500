package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/isamardev/graphify/internal/assets"
	"github.com/isamardev/graphify/internal/cache"
	"github.com/isamardev/graphify/internal/config"
	"github.com/isamardev/graphify/internal/handlers"
	"github.com/isamardev/graphify/internal/leads"
	"github.com/isamardev/graphify/internal/store"
	"github.com/isamardev/graphify/internal/validation"
)

const testAdminKey = "test-admin-key"

func newTestRouter(t *testing.T) (*config.Config, *chi.Mux, *assets.Storage) {
	t.Helper()

	cfg := &config.Config{
		AssetBase:          "https://data.graphify.art",
		StorageDir:         t.TempDir(),
		AdminAPIKey:        testAdminKey,
		RateLimitLeads:     100,
		RateLimitWindowSec: 60,
		CacheTTLSeconds:    60,
		Timezone:           time.UTC,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	storage, err := assets.NewStorage(cfg.StorageDir)
	if err != nil {
		t.Fatalf("storage init: %v", err)
	}

	local := store.New("")
	server := &handlers.Server{
		Cfg:     cfg,
		Val:     validation.New(),
		Log:     logger,
		Cache:   cache.NewNoop(),
		Storage: storage,
		Local:   local,
	}

	resolveImage := func(path string) string {
		return assets.ResolveImageURL(path, cfg.AssetBase)
	}
	leadsService := leads.NewService(leads.NewLocalRepository(local), cfg.Timezone, nil, resolveImage)
	leadsHandler := leads.NewHandler(leadsService, server.Val, logger, storage)

	return cfg, newRouter(cfg, logger, server, leadsHandler, storage, nil), storage
}

func TestUploadServedAtResolvedURL(t *testing.T) {
	cfg, router, storage := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "wall.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("jpeg bytes"))
	writer.Close()

	upload := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	upload.Header.Set("Content-Type", writer.FormDataContentType())
	if err := upload.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	file, header, err := upload.FormFile("image")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}

	path, err := storage.Save(file, header)
	if err != nil {
		t.Fatalf("save upload: %v", err)
	}
	if !strings.HasPrefix(path, "storage/") {
		t.Fatalf("expected storage/ path, got %q", path)
	}

	resolved := assets.ResolveImageURL(path, cfg.AssetBase)
	u, err := url.Parse(resolved)
	if err != nil {
		t.Fatalf("parse resolved url %q: %v", resolved, err)
	}
	if !strings.HasPrefix(u.Path, "/storage/app/public/") {
		t.Fatalf("expected resolved path under /storage/app/public/, got %q", u.Path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, u.Path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s = %d, want 200", u.Path, rec.Code)
	}
	if rec.Body.String() != "jpeg bytes" {
		t.Fatalf("unexpected file body %q", rec.Body.String())
	}
}

func TestLeadReadsAtTopLevelPaths(t *testing.T) {
	_, router, _ := newTestRouter(t)

	create := httptest.NewRequest(http.MethodPost, "/api/contacts",
		strings.NewReader(`{"name":"Asha Mehta","email":"asha@example.com"}`))
	create.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/contacts = %d: %s", rec.Code, rec.Body.String())
	}

	// unauthenticated read is rejected, not 405
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /api/contacts without key = %d, want 401", rec.Code)
	}

	list := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	list.Header.Set("X-Admin-Key", testAdminKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, list)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/contacts = %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Items []leads.Contact `json:"items"`
		Total int64           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if body.Total != 1 || len(body.Items) != 1 || body.Items[0].Name != "Asha Mehta" {
		t.Fatalf("unexpected list body: %s", rec.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/api/contacts/"+body.Items[0].ID, nil)
	get.Header.Set("X-Admin-Key", testAdminKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, get)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/contacts/{id} = %d: %s", rec.Code, rec.Body.String())
	}

	quotes := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	quotes.Header.Set("X-Admin-Key", testAdminKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, quotes)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/quotes = %d: %s", rec.Code, rec.Body.String())
	}
}

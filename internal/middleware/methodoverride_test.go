package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/collections/1", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestMethodOverrideRewritesPut(t *testing.T) {
	var seen string
	handler := MethodOverride()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req := multipartRequest(t, map[string]string{"_method": "PUT", "title": "Urban Calm"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != http.MethodPut {
		t.Fatalf("expected PUT, got %s", seen)
	}
}

func TestMethodOverrideIgnoresUnknownVerb(t *testing.T) {
	var seen string
	handler := MethodOverride()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req := multipartRequest(t, map[string]string{"_method": "TRACE"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != http.MethodPost {
		t.Fatalf("expected POST, got %s", seen)
	}
}

func TestMethodOverrideLeavesJSONAlone(t *testing.T) {
	var seen string
	handler := MethodOverride()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", bytes.NewBufferString(`{"_method":"PUT"}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != http.MethodPost {
		t.Fatalf("expected POST, got %s", seen)
	}
}

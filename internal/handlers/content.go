package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isamardev/graphify/internal/cache"
	"github.com/isamardev/graphify/internal/content"
	"github.com/isamardev/graphify/internal/slug"
	"github.com/isamardev/graphify/internal/store"
	"github.com/isamardev/graphify/internal/transport"
)

// ContentList serves the public list for one content resource as a
// {"data": [...]} envelope, cached until the next admin write.
func (s *Server) ContentList(t content.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.logWithRequest(r)
		cacheKey := cache.ContentKey(t.Plural)

		if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info(t.Plural+" list: cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := s.loadEntities(ctx, t)
		if err != nil {
			log.Error(t.Plural+" list: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			return
		}
		for _, item := range items {
			item.ResolveImages(s.resolveImage)
		}

		if payload, err := json.Marshal(transport.ListResponse{Data: items}); err == nil {
			_ = s.Cache.Set(r.Context(), cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
		}

		log.Info(t.Plural+" list: ok", slog.Int("count", len(items)))
		transport.WriteList(w, http.StatusOK, items)
	}
}

// ContentBySlug resolves a detail route by recomputing each candidate's
// slug from its current title; first match in list order wins.
func (s *Server) ContentBySlug(t content.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.logWithRequest(r)
		want := strings.TrimSpace(chi.URLParam(r, "slug"))
		if want == "" {
			transport.WriteError(w, http.StatusBadRequest, "missing slug", nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := s.loadEntities(ctx, t)
		if err != nil {
			log.Error(t.Plural+" detail: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			return
		}

		titles := make([]string, len(items))
		for i, item := range items {
			titles[i] = item.SlugTitle()
		}
		idx := slug.Resolve(titles, want)
		if idx < 0 {
			log.Warn(t.Plural+" detail: not found", slog.String("slug", want))
			transport.WriteError(w, http.StatusNotFound, t.Name+" not found", nil)
			return
		}

		item := items[idx]
		item.ResolveImages(s.resolveImage)
		log.Info(t.Plural+" detail: ok", slog.String("slug", want), slog.String("id", item.EntityID()))
		transport.WriteJSON(w, http.StatusOK, item)
	}
}

// AdminContentCreate accepts JSON or multipart bodies; uploaded files are
// written under the storage root and recorded as storage/... paths before
// the document goes through the normalizer.
func (s *Server) AdminContentCreate(t content.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.logWithRequest(r)
		raw, ok := s.readContentBody(w, r, t)
		if !ok {
			return
		}
		if details := t.MissingRequired(raw); details != nil {
			log.Warn("admin "+t.Plural+" create: validation error")
			transport.WriteError(w, http.StatusBadRequest, "validation error", details)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entity := t.Normalize(raw)

		if s.Cols == nil {
			stored, err := s.Local.Create(t.Plural, mustRaw(entity))
			if err != nil {
				log.Error("admin "+t.Plural+" create: store error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
				return
			}
			entity = t.Normalize(stored)
		} else {
			entity.SetID(primitive.NewObjectID().Hex())
			if _, err := s.Cols.Content(t.Plural).InsertOne(ctx, entity); err != nil {
				log.Error("admin "+t.Plural+" create: database error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
				return
			}
		}

		_ = s.Cache.DeletePrefix(r.Context(), cache.ContentPrefix(t.Plural))

		entity.ResolveImages(s.resolveImage)
		log.Info("admin "+t.Plural+" create: ok", slog.String("id", entity.EntityID()))
		transport.WriteJSON(w, http.StatusCreated, entity)
	}
}

func (s *Server) AdminContentUpdate(t content.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.logWithRequest(r)
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
			return
		}

		raw, ok := s.readContentBody(w, r, t)
		if !ok {
			return
		}
		if details := t.MissingRequired(raw); details != nil {
			log.Warn("admin "+t.Plural+" update: validation error")
			transport.WriteError(w, http.StatusBadRequest, "validation error", details)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entity := t.Normalize(raw)
		entity.SetID("")

		if s.Cols == nil {
			updates := mustRaw(entity)
			delete(updates, "id")
			stored, err := s.Local.Update(t.Plural, id, updates)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					log.Warn("admin "+t.Plural+" update: not found", slog.String("id", id))
					transport.WriteError(w, http.StatusNotFound, t.Name+" not found", nil)
					return
				}
				log.Error("admin "+t.Plural+" update: store error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
				return
			}
			entity = t.Normalize(stored)
		} else {
			set, err := entityToSet(entity)
			if err != nil {
				log.Error("admin "+t.Plural+" update: encode error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "encode error", nil)
				return
			}
			res, err := s.Cols.Content(t.Plural).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
			if err != nil {
				log.Error("admin "+t.Plural+" update: database error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
				return
			}
			if res.MatchedCount == 0 {
				log.Warn("admin "+t.Plural+" update: not found", slog.String("id", id))
				transport.WriteError(w, http.StatusNotFound, t.Name+" not found", nil)
				return
			}
			entity.SetID(id)
		}

		_ = s.Cache.DeletePrefix(r.Context(), cache.ContentPrefix(t.Plural))

		entity.ResolveImages(s.resolveImage)
		log.Info("admin "+t.Plural+" update: ok", slog.String("id", id))
		transport.WriteJSON(w, http.StatusOK, entity)
	}
}

func (s *Server) AdminContentDelete(t content.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.logWithRequest(r)
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if s.Cols == nil {
			if err := s.Local.Delete(t.Plural, id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					log.Warn("admin "+t.Plural+" delete: not found", slog.String("id", id))
					transport.WriteError(w, http.StatusNotFound, t.Name+" not found", nil)
					return
				}
				log.Error("admin "+t.Plural+" delete: store error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
				return
			}
		} else {
			res, err := s.Cols.Content(t.Plural).DeleteOne(ctx, bson.M{"_id": id})
			if err != nil {
				log.Error("admin "+t.Plural+" delete: database error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
				return
			}
			if res.DeletedCount == 0 {
				log.Warn("admin "+t.Plural+" delete: not found", slog.String("id", id))
				transport.WriteError(w, http.StatusNotFound, t.Name+" not found", nil)
				return
			}
		}

		_ = s.Cache.DeletePrefix(r.Context(), cache.ContentPrefix(t.Plural))

		log.Info("admin "+t.Plural+" delete: ok", slog.String("id", id))
		transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// loadEntities reads every record for the resource in list order and runs
// it through the normalizer; legacy documents with CSV tag strings or
// alias keys come out fully shaped.
func (s *Server) loadEntities(ctx context.Context, t content.Type) ([]content.Entity, error) {
	if s.Cols == nil {
		records, err := s.Local.GetAll(t.Plural)
		if err != nil {
			return nil, err
		}
		items := make([]content.Entity, 0, len(records))
		for _, record := range records {
			items = append(items, t.Normalize(record))
		}
		return items, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: t.Sort, Value: 1}})
	cursor, err := s.Cols.Content(t.Plural).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]content.Entity, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, t.Normalize(docToRaw(doc)))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// readContentBody produces the raw document for an admin write from
// either a JSON body or a multipart form, saving any uploaded files.
// It writes the error response itself and reports success.
func (s *Server) readContentBody(w http.ResponseWriter, r *http.Request, t content.Type) (content.Raw, bool) {
	log := s.logWithRequest(r)

	if isMultipart(r) {
		// MethodOverride usually parsed the form already; harmless twice.
		if r.MultipartForm == nil {
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				log.Warn("admin " + t.Plural + ": invalid multipart form")
				transport.WriteError(w, http.StatusBadRequest, "invalid form", nil)
				return nil, false
			}
		}
		raw := formToRaw(r)
		for part, field := range t.FileKeys {
			file, header, err := r.FormFile(part)
			if err != nil {
				continue
			}
			path, err := s.Storage.Save(file, header)
			if err != nil {
				log.Error("admin "+t.Plural+": upload error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
				return nil, false
			}
			raw[field] = path
		}
		return raw, true
	}

	var body map[string]interface{}
	if err := decodeLooseBody(r, &body); err != nil {
		log.Warn("admin " + t.Plural + ": invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return nil, false
	}
	return content.Raw(body), true
}

func mustRaw(e content.Entity) content.Raw {
	raw, err := entityToRaw(e)
	if err != nil {
		// entities are plain structs of strings and slices; this cannot
		// fail outside of programmer error
		return content.Raw{}
	}
	return raw
}

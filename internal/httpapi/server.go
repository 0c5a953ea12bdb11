package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hookd/internal/behavior"
	"hookd/internal/entity"
	"hookd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListEntities() []types.EntityStatus
	GetEntity(id string) (types.EntityStatus, error)
	CreateEntity(req types.CreateEntityRequest) (types.EntityStatus, error)
	Delete(id string) error
	AttachBehavior(entityID, name string, cfg map[string]any) error
	DetachBehavior(entityID, name string) error
	Trigger(entityID, eventName string, data map[string]any) (types.TriggerResponse, error)
	SaveFields(entityID string, fields map[string]any) (types.SaveResponse, error)
	Status() types.StatusResponse
	Ready() bool
}

// statusForError maps well-known service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case entity.IsEntityNotFound(err), entity.IsBehaviorNotFound(err), behavior.IsUnknownFactory(err):
		return http.StatusNotFound
	case entity.IsEntityConflict(err), entity.IsBehaviorConflict(err), behavior.IsAlreadyAttached(err):
		return http.StatusConflict
	case behavior.IsUnresolvedHandler(err):
		return http.StatusUnprocessableEntity
	case entity.IsRegistryFull(err):
		return http.StatusTooManyRequests
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// decodeJSON enforces content type and body size before decoding into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already out; an encode failure here is unrecoverable
	_ = json.NewEncoder(w).Encode(v)
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.Get("/entities", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.EntitiesResponse{Entities: svc.ListEntities()})
	})

	r.Post("/entities", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		var req types.CreateEntityRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.ID) == "" {
			writeJSONError(w, http.StatusBadRequest, "id is required")
			return
		}
		st, err := svc.CreateEntity(req)
		if err != nil {
			code := statusForError(err)
			writeJSONError(w, code, err.Error())
			logRequest(r, "create entity", strconv.Itoa(code), start, err)
			return
		}
		writeJSON(w, http.StatusCreated, st)
		logRequest(r, "create entity", "201", start, nil)
	})

	r.Get("/entities/{id}", func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.GetEntity(chi.URLParam(r, "id"))
		if err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, st)
	})

	r.Delete("/entities/{id}", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if err := svc.Delete(chi.URLParam(r, "id")); err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
		logRequest(r, "delete entity", "204", start, nil)
	})

	r.Post("/entities/{id}/behaviors", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		var req types.AttachRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeJSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		id := chi.URLParam(r, "id")
		if err := svc.AttachBehavior(id, req.Name, req.Config); err != nil {
			code := statusForError(err)
			writeJSONError(w, code, err.Error())
			logRequest(r, "attach behavior", strconv.Itoa(code), start, err)
			return
		}
		st, err := svc.GetEntity(id)
		if err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, st)
		logRequest(r, "attach behavior", "201", start, nil)
	})

	r.Delete("/entities/{id}/behaviors/{name}", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		err := svc.DetachBehavior(chi.URLParam(r, "id"), chi.URLParam(r, "name"))
		if err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
		logRequest(r, "detach behavior", "204", start, nil)
	})

	r.Post("/entities/{id}/events/{event}", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		var data map[string]any
		if r.ContentLength > 0 {
			if !decodeJSON(w, r, &data) {
				return
			}
		}
		resp, err := svc.Trigger(chi.URLParam(r, "id"), chi.URLParam(r, "event"), data)
		if err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, resp)
		logRequest(r, "trigger event", "200", start, nil)
	})

	r.Put("/entities/{id}/fields", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		var req types.SaveFieldsRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		resp, err := svc.SaveFields(chi.URLParam(r, "id"), req.Fields)
		if err != nil {
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, resp)
		logRequest(r, "save fields", "200", start, nil)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("not ready"))
	})

	r.Handle("/metrics", promhttp.Handler())

	MountSwagger(r)

	return r
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/notify"
	"delivery-console/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps a container error onto a status code. Backend errors keep
// their status and detail; anything unrecognised means the backend could
// not be reached.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"redirect": "/login"})
	case errors.Is(err, service.ErrQuantityFloor),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
	case errors.Is(err, service.ErrNotAdmin):
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": service.LoginError(err)})
	case errors.As(err, &apiErr):
		writeJSON(w, apiErr.StatusCode, map[string]string{"detail": apiErr.Detail})
	case errors.Is(err, apiclient.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": err.Error()})
	default:
		writeJSON(w, http.StatusBadGateway, map[string]string{"detail": "backend unavailable"})
	}
}

// writeLoginError answers rejected credentials with the auth service's
// message instead of a login redirect.
func writeLoginError(w http.ResponseWriter, err error) {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": service.LoginError(err)})
		return
	}
	writeError(w, err)
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil && id > 0
}

// statusFilter reads ?status=; empty and "all" mean no filter.
func statusFilter(r *http.Request) (*domain.OrderStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" || raw == "all" {
		return nil, nil
	}
	status, err := domain.ParseOrderStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func healthCheck(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"service":   service,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

type notificationView struct {
	Visible      bool                 `json:"visible"`
	Notification *notify.Notification `json:"notification,omitempty"`
	Rendered     string               `json:"rendered,omitempty"`
}

func notificationsHandler(bus *notify.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := bus.Current()
		if !ok {
			writeJSON(w, http.StatusOK, notificationView{})
			return
		}
		writeJSON(w, http.StatusOK, notificationView{Visible: true, Notification: &n, Rendered: notify.Render(n)})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

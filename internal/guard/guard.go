// Package guard decides whether the current session may open a view.
package guard

import (
	"context"
	"encoding/json"
	"net/http"

	"delivery-console/internal/domain"
	"delivery-console/internal/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Capability int

const (
	ViewStorefront Capability = iota
	ManageOrders
	ManageCatalog
	ManageUsers
	ViewStats
)

func (c Capability) String() string {
	switch c {
	case ViewStorefront:
		return "view_storefront"
	case ManageOrders:
		return "manage_orders"
	case ManageCatalog:
		return "manage_catalog"
	case ManageUsers:
		return "manage_users"
	case ViewStats:
		return "view_stats"
	}
	return "unknown"
}

var grants = map[domain.Role][]Capability{
	domain.RoleClient:          {ViewStorefront},
	domain.RoleRestaurantAdmin: {ManageOrders, ManageCatalog, ViewStats},
	domain.RoleSystemAdmin:     {ViewStorefront, ManageOrders, ManageCatalog, ManageUsers, ViewStats},
}

// Can reports whether role carries capability.
func Can(role domain.Role, capability Capability) bool {
	for _, granted := range grants[role] {
		if granted == capability {
			return true
		}
	}
	return false
}

type Reason string

const (
	ReasonNoToken       Reason = "no token"
	ReasonNoUser        Reason = "no user on session"
	ReasonClientInAdmin Reason = "client accounts cannot use the admin console"
	ReasonForbidden     Reason = "role lacks capability"
)

// Decision is Allowed or Denied with a reason.
type Decision struct {
	Allowed bool
	Reason  Reason
	User    *domain.User
}

func Allow(user *domain.User) Decision { return Decision{Allowed: true, User: user} }

func Deny(reason Reason) Decision { return Decision{Reason: reason} }

// Session is what the guard reads. *session.Store satisfies it.
type Session interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}

var _ Session = (*session.Store)(nil)

type Guard struct {
	session Session
	app     session.App
	logger  *zap.Logger
}

func New(s Session, app session.App, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{session: s, app: app, logger: logger}
}

// Check evaluates the session against capability. A client-role session
// found in the admin console is wiped.
func (g *Guard) Check(ctx context.Context, capability Capability) (Decision, error) {
	token, err := g.session.Token(ctx)
	if err != nil {
		return Decision{}, err
	}
	if token == "" {
		return Deny(ReasonNoToken), nil
	}
	user, err := g.session.User(ctx)
	if err != nil {
		return Decision{}, err
	}
	if user == nil {
		return Deny(ReasonNoUser), nil
	}
	if g.app == session.AppAdmin && user.Role == domain.RoleClient {
		if err := g.session.Clear(ctx); err != nil {
			g.logger.Warn("wipe client session", zap.Error(err))
		}
		return Deny(ReasonClientInAdmin), nil
	}
	if !Can(user.Role, capability) {
		return Deny(ReasonForbidden), nil
	}
	return Allow(user), nil
}

type ctxKey struct{}

// UserFrom returns the user a Require middleware let through.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*domain.User)
	return user, ok
}

// Require turns a Denied decision into 401 with a redirect to the login view.
func (g *Guard) Require(capability Capability) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := g.Check(r.Context(), capability)
			if err != nil {
				g.logger.Error("guard check", zap.Error(err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if !decision.Allowed {
				g.logger.Debug("denied",
					zap.String("path", r.URL.Path),
					zap.Stringer("capability", capability),
					zap.String("reason", string(decision.Reason)))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"redirect": "/login",
					"reason":   string(decision.Reason),
				})
				return
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, decision.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"delivery-console/internal/domain"
	"delivery-console/internal/guard"
	"delivery-console/internal/notify"
	"delivery-console/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	Auth       *service.AuthService
	Orders     *service.OrderBoardService
	Menu       *service.MenuService
	Categories *service.CategoryService
	Restaurant *service.RestaurantService
	Reviews    *service.ReviewService
	Users      *service.UserService
	Dashboard  *service.DashboardService
	Guard      *guard.Guard
	Notify     *notify.Bus
}

func (h *AdminHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", healthCheck("admin-console")).Methods("GET")
	r.HandleFunc("/login", h.login).Methods("POST")
	r.HandleFunc("/notifications", notificationsHandler(h.Notify)).Methods("GET")

	stats := r.NewRoute().Subrouter()
	stats.Use(h.Guard.Require(guard.ViewStats))
	stats.HandleFunc("/dashboard", h.dashboard).Methods("GET")

	orders := r.NewRoute().Subrouter()
	orders.Use(h.Guard.Require(guard.ManageOrders))
	orders.HandleFunc("/orders", h.listOrders).Methods("GET")
	orders.HandleFunc("/orders/{id}", h.orderDetails).Methods("GET")
	orders.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	orders.HandleFunc("/kanban", h.kanban).Methods("GET")
	orders.HandleFunc("/kanban/drop", h.kanbanDrop).Methods("POST")

	catalog := r.NewRoute().Subrouter()
	catalog.Use(h.Guard.Require(guard.ManageCatalog))
	catalog.HandleFunc("/menu", h.listMenu).Methods("GET")
	catalog.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	catalog.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PUT")
	catalog.HandleFunc("/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	catalog.HandleFunc("/categories", h.listCategories).Methods("GET")
	catalog.HandleFunc("/categories", h.createCategory).Methods("POST")
	catalog.HandleFunc("/categories/{id}", h.updateCategory).Methods("PUT")
	catalog.HandleFunc("/categories/{id}", h.deleteCategory).Methods("DELETE")
	catalog.HandleFunc("/restaurant", h.getRestaurant).Methods("GET")
	catalog.HandleFunc("/restaurant", h.updateRestaurant).Methods("PUT")
	catalog.HandleFunc("/reviews", h.listReviews).Methods("GET")
	catalog.HandleFunc("/reviews/{id}", h.deleteReview).Methods("DELETE")

	users := r.NewRoute().Subrouter()
	users.Use(h.Guard.Require(guard.ManageUsers))
	users.HandleFunc("/users", h.listUsers).Methods("GET")
	users.HandleFunc("/users/{id}/role", h.changeRole).Methods("PUT")
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	user, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		writeLoginError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Dashboard.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := statusFilter(r)
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if _, err := h.Orders.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.Table(filter))
}

func (h *AdminHandler) orderDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	details, err := h.Orders.Details(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	status, err := domain.ParseOrderStatus(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if err := h.Orders.UpdateStatus(r.Context(), id, status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.Table(nil))
}

func (h *AdminHandler) kanban(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Orders.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.Board())
}

type dropRequest struct {
	CardID      string  `json:"draggable_id"`
	Destination *string `json:"destination"`
}

func (h *AdminHandler) kanbanDrop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	moved, err := h.Orders.Drop(r.Context(), req.CardID, req.Destination)
	if err != nil && !moved {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"moved": moved,
		"board": h.Orders.Board(),
	})
}

func (h *AdminHandler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.Load(r.Context(), nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AdminHandler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var input domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	item, err := h.Menu.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *AdminHandler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid menu item ID", http.StatusBadRequest)
		return
	}
	var input domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	item, err := h.Menu.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *AdminHandler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid menu item ID", http.StatusBadRequest)
		return
	}
	if err := h.Menu.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	views, err := h.Categories.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	category, err := h.Categories.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}
	var input domain.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	category, err := h.Categories.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *AdminHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurant.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *AdminHandler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var input domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	restaurant, err := h.Restaurant.Update(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *AdminHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	var rating *int
	if raw := r.URL.Query().Get("rating"); raw != "" && raw != "all" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5 {
			http.Error(w, "Invalid rating", http.StatusBadRequest)
			return
		}
		rating = &n
	}
	if _, err := h.Reviews.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Reviews.Summary(rating))
}

func (h *AdminHandler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}
	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) changeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	var req struct {
		Role domain.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	user, err := h.Users.ChangeRole(r.Context(), id, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

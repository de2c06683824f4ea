package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"delivery-console/internal/domain"
	"delivery-console/internal/guard"
	"delivery-console/internal/listview"
	"delivery-console/internal/notify"
	"delivery-console/internal/service"

	"github.com/gorilla/mux"
)

type StorefrontHandler struct {
	Auth       *service.AuthService
	Menu       *service.MenuService
	Categories *service.CategoryService
	Cart       *service.CartService
	Badge      *service.CartBadge
	Checkout   *service.CheckoutService
	Orders     *service.CustomerOrdersService
	Guard      *guard.Guard
	Notify     *notify.Bus
}

func (h *StorefrontHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", healthCheck("storefront-console")).Methods("GET")
	r.HandleFunc("/login", h.login).Methods("POST")
	r.HandleFunc("/register", h.register).Methods("POST")
	r.HandleFunc("/logout", h.logout).Methods("POST")
	r.HandleFunc("/menu", h.menu).Methods("GET")
	r.HandleFunc("/categories", h.categories).Methods("GET")
	r.HandleFunc("/notifications", notificationsHandler(h.Notify)).Methods("GET")

	private := r.NewRoute().Subrouter()
	private.Use(h.Guard.Require(guard.ViewStorefront))
	private.HandleFunc("/cart", h.cart).Methods("GET")
	private.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	private.HandleFunc("/cart/items", h.addToCart).Methods("POST")
	private.HandleFunc("/cart/items/{id}", h.updateCartItem).Methods("PUT")
	private.HandleFunc("/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	private.HandleFunc("/cart/badge", h.badge).Methods("GET")
	private.HandleFunc("/checkout", h.checkoutSummary).Methods("GET")
	private.HandleFunc("/checkout", h.placeOrder).Methods("POST")
	private.HandleFunc("/orders", h.orders).Methods("GET")
	private.HandleFunc("/orders/{id}/review", h.review).Methods("POST")
	private.HandleFunc("/orders/{id}/cancel", h.cancel).Methods("PUT")
	private.HandleFunc("/orders/{id}/qrcode", h.qrcode).Methods("GET")
}

func (h *StorefrontHandler) login(w http.ResponseWriter, r *http.Request) {
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
	h.Badge.Refresh(r.Context())
	writeJSON(w, http.StatusOK, user)
}

func (h *StorefrontHandler) register(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	user, err := h.Auth.Register(r.Context(), creds)
	if err != nil {
		writeLoginError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *StorefrontHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.Badge.Refresh(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorefrontHandler) menu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	order, err := listview.ParseSortOrder(q.Get("sort"))
	if err != nil {
		http.Error(w, "Invalid sort", http.StatusBadRequest)
		return
	}
	var categoryID *int
	if raw := q.Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid category", http.StatusBadRequest)
			return
		}
		categoryID = &id
	}
	if _, err := h.Menu.Load(r.Context(), categoryID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Menu.View(listview.Query{
		Search:     q.Get("q"),
		CategoryID: categoryID,
		Sort:       order,
	}))
}

func (h *StorefrontHandler) categories(w http.ResponseWriter, r *http.Request) {
	views, err := h.Categories.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

type cartLineView struct {
	service.CartLine
	Bulk      bool   `json:"bulk"`
	LineTotal string `json:"line_total"`
}

type cartView struct {
	Lines     []cartLineView `json:"lines"`
	Total     int64          `json:"total"`
	TotalText string         `json:"total_text"`
}

func (h *StorefrontHandler) writeCart(w http.ResponseWriter) {
	lines := h.Cart.Lines()
	view := cartView{Lines: make([]cartLineView, 0, len(lines)), Total: h.Cart.Total()}
	for _, line := range lines {
		view.Lines = append(view.Lines, cartLineView{
			CartLine:  line,
			Bulk:      line.Bulk(),
			LineTotal: domain.FormatMoney(line.LineTotal()),
		})
	}
	view.TotalText = domain.FormatMoney(view.Total)
	writeJSON(w, http.StatusOK, view)
}

func (h *StorefrontHandler) cart(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Cart.Fetch(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *StorefrontHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MenuItemID int `json:"menu_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	item, ok := h.Menu.Find(req.MenuItemID)
	if !ok {
		if _, err := h.Menu.Load(r.Context(), nil); err != nil {
			writeError(w, err)
			return
		}
		if item, ok = h.Menu.Find(req.MenuItemID); !ok {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
	}
	if err := h.Cart.Add(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	h.Badge.Refresh(r.Context())
	w.WriteHeader(http.StatusCreated)
}

func (h *StorefrontHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid cart item ID", http.StatusBadRequest)
		return
	}
	var req struct {
		Quantity *int `json:"quantity"`
		Delta    *int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	var err error
	switch {
	case req.Quantity != nil:
		err = h.Cart.UpdateQuantity(r.Context(), id, *req.Quantity)
	case req.Delta != nil:
		if _, err := h.Cart.Fetch(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		err = h.Cart.Adjust(r.Context(), id, *req.Delta)
	default:
		http.Error(w, "quantity or delta is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *StorefrontHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid cart item ID", http.StatusBadRequest)
		return
	}
	if err := h.Cart.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	h.Badge.Refresh(r.Context())
	h.writeCart(w)
}

func (h *StorefrontHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.Badge.Refresh(r.Context())
	h.writeCart(w)
}

func (h *StorefrontHandler) badge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"count": h.Badge.Count()})
}

func (h *StorefrontHandler) checkoutSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Checkout.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *StorefrontHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address      string `json:"address"`
		DeliveryTime string `json:"delivery_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Address == "" {
		http.Error(w, "address is required", http.StatusBadRequest)
		return
	}
	placed, err := h.Checkout.PlaceOrder(r.Context(), req.Address, req.DeliveryTime)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Badge.Refresh(r.Context())
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":   placed,
		"qr_code": fmt.Sprintf("/orders/%d/qrcode", placed.ID),
	})
}

func (h *StorefrontHandler) orders(w http.ResponseWriter, r *http.Request) {
	filter, err := statusFilter(r)
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if _, err := h.Orders.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.Filtered(filter))
}

func (h *StorefrontHandler) review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	var input domain.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}
	if err := h.Orders.SubmitReview(r.Context(), id, input); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *StorefrontHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	if err := h.Orders.Cancel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.Filtered(nil))
}

func (h *StorefrontHandler) qrcode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	png, err := h.Checkout.QRCode(id)
	if err != nil {
		http.Error(w, "QR code unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

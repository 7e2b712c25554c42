package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/TheCodister/badminton-shop-api/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render  *render.Render
	service *services.CartService
}

func NewCartHandler(r *render.Render, service *services.CartService) *CartHandler {
	return &CartHandler{render: r, service: service}
}

type addItemRequest struct {
	Quantity *int `json:"quantity"`
}

// Get returns null with success status when the customer has no cart yet,
// so clients can tell "no cart" apart from an error.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	cart, err := h.service.GetCart(r.Context(), customerID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if cart == nil {
		_ = h.render.JSON(w, http.StatusOK, nil)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(h.render, w, helpers.NewValidation("Invalid quantity"))
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty < 1 {
		respondError(h.render, w, helpers.NewValidation("Invalid quantity"))
		return
	}

	item, created, err := h.service.AddItem(r.Context(), vars["customerId"], vars["productId"], qty)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	_ = h.render.JSON(w, status, newCartItemResponse(item))
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	qty, err := strconv.Atoi(vars["quantity"])
	if err != nil || qty < 1 {
		respondError(h.render, w, helpers.NewValidation("Invalid quantity"))
		return
	}

	item, err := h.service.SetQuantity(r.Context(), vars["customerId"], vars["productId"], qty)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, newCartItemResponse(item))
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.RemoveItem(r.Context(), vars["customerId"], vars["productId"]); err != nil {
		respondError(h.render, w, err)
		return
	}

	respondMessage(h.render, w, http.StatusOK, "Product removed from cart")
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	if err := h.service.Clear(r.Context(), customerID); err != nil {
		respondError(h.render, w, err)
		return
	}

	respondMessage(h.render, w, http.StatusOK, "Cart cleared successfully")
}

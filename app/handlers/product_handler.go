package handlers

import (
	"net/http"
	"strconv"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/TheCodister/badminton-shop-api/app/repositories"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepositoryImpl
}

func NewProductHandler(r *render.Render, productRepo repositories.ProductRepositoryImpl) *ProductHandler {
	return &ProductHandler{render: r, productRepo: productRepo}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(h.render, w, helpers.NewValidation("Invalid limit"))
			return
		}
		limit = parsed
	}

	products, err := h.productRepo.Search(r.Context(), q.Get("search"), limit)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	resp := make([]ProductSummary, 0, len(products))
	for i := range products {
		resp = append(resp, newProductSummary(&products[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, resp)
}

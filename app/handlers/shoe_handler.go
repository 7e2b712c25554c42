package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/TheCodister/badminton-shop-api/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ShoeHandler struct {
	render    *render.Render
	shoeRepo  repositories.ShoeRepositoryImpl
	validator *validator.Validate
}

func NewShoeHandler(r *render.Render, shoeRepo repositories.ShoeRepositoryImpl, validator *validator.Validate) *ShoeHandler {
	return &ShoeHandler{render: r, shoeRepo: shoeRepo, validator: validator}
}

func (h *ShoeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSort, err := parsePageSort(q)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	filter := repositories.ShoeFilter{
		Brands:         parseBrands(q.Get("brand")),
		Sizes:          helpers.SplitCSV(q.Get("size")),
		AvailableSizes: helpers.SplitCSV(q.Get("available_size")),
		PageSort:       pageSort,
	}

	shoes, total, err := h.shoeRepo.List(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	data := make([]ShoeResponse, 0, len(shoes))
	for i := range shoes {
		data = append(data, newShoeResponse(&shoes[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, ListResponse{Total: total, Data: data})
}

func (h *ShoeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	shoe, err := h.shoeRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if shoe == nil {
		respondError(h.render, w, helpers.NewNotFound("Shoe not found"))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, newShoeResponse(shoe))
}

func (h *ShoeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateShoeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, helpers.NewValidation("Invalid request body"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(h.render, w, err)
		return
	}

	product := req.toModel()
	if err := h.shoeRepo.Create(r.Context(), &product); err != nil {
		respondError(h.render, w, err)
		return
	}

	product.Shoes.Product = &product
	_ = h.render.JSON(w, http.StatusCreated, newShoeResponse(product.Shoes))
}

func (h *ShoeHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []CreateShoeRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		respondError(h.render, w, helpers.NewValidation("Expected an array of shoes"))
		return
	}
	for _, req := range reqs {
		if err := h.validator.Struct(req); err != nil {
			respondValidationError(h.render, w, err)
			return
		}
	}

	products := make([]models.Product, 0, len(reqs))
	for _, req := range reqs {
		products = append(products, req.toModel())
	}
	if err := h.shoeRepo.CreateBulk(r.Context(), products); err != nil {
		respondError(h.render, w, err)
		return
	}

	data := make([]ShoeResponse, 0, len(products))
	for i := range products {
		products[i].Shoes.Product = &products[i]
		data = append(data, newShoeResponse(products[i].Shoes))
	}
	_ = h.render.JSON(w, http.StatusCreated, data)
}

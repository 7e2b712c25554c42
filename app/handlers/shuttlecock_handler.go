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

type ShuttlecockHandler struct {
	render          *render.Render
	shuttlecockRepo repositories.ShuttlecockRepositoryImpl
	validator       *validator.Validate
}

func NewShuttlecockHandler(r *render.Render, shuttlecockRepo repositories.ShuttlecockRepositoryImpl, validator *validator.Validate) *ShuttlecockHandler {
	return &ShuttlecockHandler{render: r, shuttlecockRepo: shuttlecockRepo, validator: validator}
}

func (h *ShuttlecockHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSort, err := parsePageSort(q)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	speeds, err := parseIntList(q.Get("speed"), "speed")
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	filter := repositories.ShuttlecockFilter{
		Brands:       parseBrands(q.Get("brand")),
		ShuttleTypes: helpers.SplitCSV(q.Get("shuttle_type")),
		Speeds:       speeds,
		PageSort:     pageSort,
	}

	shuttlecocks, total, err := h.shuttlecockRepo.List(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	data := make([]ShuttlecockResponse, 0, len(shuttlecocks))
	for i := range shuttlecocks {
		data = append(data, newShuttlecockResponse(&shuttlecocks[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, ListResponse{Total: total, Data: data})
}

func (h *ShuttlecockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	shuttlecock, err := h.shuttlecockRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if shuttlecock == nil {
		respondError(h.render, w, helpers.NewNotFound("Shuttlecock not found"))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, newShuttlecockResponse(shuttlecock))
}

func (h *ShuttlecockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateShuttlecockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, helpers.NewValidation("Invalid request body"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(h.render, w, err)
		return
	}

	product := req.toModel()
	if err := h.shuttlecockRepo.Create(r.Context(), &product); err != nil {
		respondError(h.render, w, err)
		return
	}

	product.Shuttlecock.Product = &product
	_ = h.render.JSON(w, http.StatusCreated, newShuttlecockResponse(product.Shuttlecock))
}

func (h *ShuttlecockHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []CreateShuttlecockRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		respondError(h.render, w, helpers.NewValidation("Expected an array of shuttlecocks"))
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
	if err := h.shuttlecockRepo.CreateBulk(r.Context(), products); err != nil {
		respondError(h.render, w, err)
		return
	}

	data := make([]ShuttlecockResponse, 0, len(products))
	for i := range products {
		products[i].Shuttlecock.Product = &products[i]
		data = append(data, newShuttlecockResponse(products[i].Shuttlecock))
	}
	_ = h.render.JSON(w, http.StatusCreated, data)
}

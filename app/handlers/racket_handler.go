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

type RacketHandler struct {
	render     *render.Render
	racketRepo repositories.RacketRepositoryImpl
	validator  *validator.Validate
}

func NewRacketHandler(r *render.Render, racketRepo repositories.RacketRepositoryImpl, validator *validator.Validate) *RacketHandler {
	return &RacketHandler{render: r, racketRepo: racketRepo, validator: validator}
}

func (h *RacketHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSort, err := parsePageSort(q)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	filter := repositories.RacketFilter{
		Brands:      parseBrands(q.Get("brand")),
		Weights:     helpers.SplitCSV(q.Get("weight")),
		Balances:    parseEnumList(q.Get("balance"), models.ValidBalance),
		Stiffnesses: parseEnumList(q.Get("stiffness"), models.ValidStiffness),
		PageSort:    pageSort,
	}

	rackets, total, err := h.racketRepo.List(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	data := make([]RacketResponse, 0, len(rackets))
	for i := range rackets {
		data = append(data, newRacketResponse(&rackets[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, ListResponse{Total: total, Data: data})
}

func (h *RacketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	racket, err := h.racketRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if racket == nil {
		respondError(h.render, w, helpers.NewNotFound("Racket not found"))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, newRacketResponse(racket))
}

func (h *RacketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRacketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, helpers.NewValidation("Invalid request body"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(h.render, w, err)
		return
	}

	product := req.toModel()
	if err := h.racketRepo.Create(r.Context(), &product); err != nil {
		respondError(h.render, w, err)
		return
	}

	product.Racket.Product = &product
	_ = h.render.JSON(w, http.StatusCreated, newRacketResponse(product.Racket))
}

func (h *RacketHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []CreateRacketRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		respondError(h.render, w, helpers.NewValidation("Expected an array of rackets"))
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
	if err := h.racketRepo.CreateBulk(r.Context(), products); err != nil {
		respondError(h.render, w, err)
		return
	}

	data := make([]RacketResponse, 0, len(products))
	for i := range products {
		products[i].Racket.Product = &products[i]
		data = append(data, newRacketResponse(products[i].Racket))
	}
	_ = h.render.JSON(w, http.StatusCreated, data)
}

package handlers

import (
	"strings"

	"github.com/TheCodister/badminton-shop-api/app/models"
)

type ProductPayload struct {
	ProductName       string `json:"product_name" validate:"required,max=255"`
	ImageURL          string `json:"image_url"`
	Price             int64  `json:"price" validate:"required,gt=0"`
	Brand             string `json:"brand" validate:"required"`
	Status            string `json:"status"`
	Sales             int    `json:"sales" validate:"gte=0"`
	Stock             int    `json:"stock" validate:"gte=0"`
	AvailableLocation string `json:"available_location"`
	Description       string `json:"description"`
}

func (p ProductPayload) toModel() models.Product {
	return models.Product{
		ProductName:       p.ProductName,
		ImageURL:          p.ImageURL,
		Price:             p.Price,
		Brand:             strings.ToUpper(p.Brand),
		Status:            p.Status,
		Sales:             p.Sales,
		Stock:             p.Stock,
		AvailableLocation: p.AvailableLocation,
		Description:       p.Description,
	}
}

type RacketPayload struct {
	Balance      string `json:"balance" validate:"required"`
	Stiffness    string `json:"stiffness" validate:"required"`
	Weight       string `json:"weight"`
	Length       string `json:"length"`
	PlayerLevel  string `json:"player_level"`
	PlayingStyle string `json:"playing_style"`
	Line         string `json:"line"`
	Technology   string `json:"technology"`
	MaxTension   string `json:"max_tension"`
}

type CreateRacketRequest struct {
	ProductPayload
	Racket RacketPayload `json:"racket" validate:"required"`
}

func (r CreateRacketRequest) toModel() models.Product {
	product := r.ProductPayload.toModel()
	product.Racket = &models.Racket{
		Balance:      strings.ToUpper(r.Racket.Balance),
		Stiffness:    strings.ToUpper(r.Racket.Stiffness),
		Weight:       r.Racket.Weight,
		Length:       r.Racket.Length,
		PlayerLevel:  r.Racket.PlayerLevel,
		PlayingStyle: r.Racket.PlayingStyle,
		Line:         r.Racket.Line,
		Technology:   r.Racket.Technology,
		MaxTension:   r.Racket.MaxTension,
	}
	return product
}

type ShoePayload struct {
	Color         string   `json:"color"`
	Size          string   `json:"size"`
	AvailableSize []string `json:"available_size"`
	Technology    string   `json:"technology"`
}

type CreateShoeRequest struct {
	ProductPayload
	Shoes ShoePayload `json:"shoes" validate:"required"`
}

func (r CreateShoeRequest) toModel() models.Product {
	sizes := make([]models.ShoeSize, 0, len(r.Shoes.AvailableSize))
	for _, s := range r.Shoes.AvailableSize {
		s = strings.TrimSpace(s)
		if s != "" {
			sizes = append(sizes, models.ShoeSize{Size: s})
		}
	}

	product := r.ProductPayload.toModel()
	product.Shoes = &models.Shoes{
		Color:          r.Shoes.Color,
		Size:           r.Shoes.Size,
		Technology:     r.Shoes.Technology,
		AvailableSizes: sizes,
	}
	return product
}

type ShuttlecockPayload struct {
	ShuttleType string `json:"shuttle_type" validate:"required"`
	Speed       int    `json:"speed" validate:"required,gt=0"`
	NoPerTube   int    `json:"no_per_tube" validate:"gte=0"`
}

type CreateShuttlecockRequest struct {
	ProductPayload
	Shuttlecock ShuttlecockPayload `json:"shuttlecock" validate:"required"`
}

func (r CreateShuttlecockRequest) toModel() models.Product {
	product := r.ProductPayload.toModel()
	product.Shuttlecock = &models.Shuttlecock{
		ShuttleType: r.Shuttlecock.ShuttleType,
		Speed:       r.Shuttlecock.Speed,
		NoPerTube:   r.Shuttlecock.NoPerTube,
	}
	return product
}

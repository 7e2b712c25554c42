package handlers

import (
	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/TheCodister/badminton-shop-api/app/utils/format"
)

// ListResponse wraps every catalog listing: total is the size of the
// filtered set before pagination.
type ListResponse struct {
	Total int64       `json:"total"`
	Data  interface{} `json:"data"`
}

type ProductResponse struct {
	ID                string  `json:"id"`
	ProductName       string  `json:"product_name"`
	ImageURL          string  `json:"image_url"`
	Price             float64 `json:"price"`
	Brand             string  `json:"brand"`
	Status            string  `json:"status"`
	Sales             int     `json:"sales"`
	Stock             int     `json:"stock"`
	AvailableLocation string  `json:"available_location"`
	Description       string  `json:"description"`
}

func newProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		ProductName:       p.ProductName,
		ImageURL:          p.ImageURL,
		Price:             format.USD(p.Price),
		Brand:             p.Brand,
		Status:            p.Status,
		Sales:             p.Sales,
		Stock:             p.Stock,
		AvailableLocation: p.AvailableLocation,
		Description:       p.Description,
	}
}

type ProductSummary struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	ProductType string  `json:"product_type"`
}

func newProductSummary(p *models.Product) ProductSummary {
	productType := p.DetailType
	if productType == "" {
		productType = models.DetailUnknown
	}
	return ProductSummary{
		ID:          p.ID,
		ProductName: p.ProductName,
		ImageURL:    p.ImageURL,
		Price:       format.USD(p.Price),
		ProductType: productType,
	}
}

type RacketResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Balance      string          `json:"balance"`
	Stiffness    string          `json:"stiffness"`
	Weight       string          `json:"weight"`
	Length       string          `json:"length"`
	PlayerLevel  string          `json:"player_level"`
	PlayingStyle string          `json:"playing_style"`
	Line         string          `json:"line"`
	Technology   string          `json:"technology"`
	MaxTension   string          `json:"max_tension"`
	Product      ProductResponse `json:"product"`
}

func newRacketResponse(r *models.Racket) RacketResponse {
	resp := RacketResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		Balance:      r.Balance,
		Stiffness:    r.Stiffness,
		Weight:       r.Weight,
		Length:       r.Length,
		PlayerLevel:  r.PlayerLevel,
		PlayingStyle: r.PlayingStyle,
		Line:         r.Line,
		Technology:   r.Technology,
		MaxTension:   r.MaxTension,
	}
	if r.Product != nil {
		resp.Product = newProductResponse(r.Product)
	}
	return resp
}

type ShoeResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	AvailableSize []string        `json:"available_size"`
	Technology    string          `json:"technology"`
	Product       ProductResponse `json:"product"`
}

func newShoeResponse(s *models.Shoes) ShoeResponse {
	sizes := make([]string, 0, len(s.AvailableSizes))
	for _, as := range s.AvailableSizes {
		sizes = append(sizes, as.Size)
	}
	resp := ShoeResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		Color:         s.Color,
		Size:          s.Size,
		AvailableSize: sizes,
		Technology:    s.Technology,
	}
	if s.Product != nil {
		resp.Product = newProductResponse(s.Product)
	}
	return resp
}

type ShuttlecockResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ShuttleType string          `json:"shuttle_type"`
	Speed       int             `json:"speed"`
	NoPerTube   int             `json:"no_per_tube"`
	Product     ProductResponse `json:"product"`
}

func newShuttlecockResponse(s *models.Shuttlecock) ShuttlecockResponse {
	resp := ShuttlecockResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ShuttleType: s.ShuttleType,
		Speed:       s.Speed,
		NoPerTube:   s.NoPerTube,
	}
	if s.Product != nil {
		resp.Product = newProductResponse(s.Product)
	}
	return resp
}

type CartProductResponse struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type CartItemResponse struct {
	ItemID    string               `json:"item_id"`
	CartID    string               `json:"cart_id"`
	ProductID string               `json:"product_id"`
	Quantity  int                  `json:"quantity"`
	Product   *CartProductResponse `json:"product,omitempty"`
}

func newCartItemResponse(item *models.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ItemID:    item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product != nil {
		resp.Product = &CartProductResponse{
			ID:          item.Product.ID,
			ProductName: item.Product.ProductName,
			Price:       format.USD(item.Product.Price),
			ImageURL:    item.Product.ImageURL,
		}
	}
	return resp
}

type CartResponse struct {
	CartID     string             `json:"cart_id"`
	CustomerID string             `json:"customer_id"`
	CartItems  []CartItemResponse `json:"cart_items"`
}

func newCartResponse(cart *models.ShoppingCart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.CartItems))
	for i := range cart.CartItems {
		items = append(items, newCartItemResponse(&cart.CartItems[i]))
	}
	return CartResponse{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		CartItems:  items,
	}
}

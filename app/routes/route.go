package routes

import (
	"net/http"

	"github.com/TheCodister/badminton-shop-api/app/configs"
	"github.com/TheCodister/badminton-shop-api/app/handlers"
	"github.com/TheCodister/badminton-shop-api/app/middlewares"
	"github.com/TheCodister/badminton-shop-api/app/repositories"
	"github.com/TheCodister/badminton-shop-api/app/services"
	"github.com/TheCodister/badminton-shop-api/app/utils/token"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) (*mux.Router, error) {
	tokenMaker, err := token.NewMaker(env.JWTSecret, env.TokenDuration)
	if err != nil {
		return nil, err
	}

	rnd := render.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	racketRepo := repositories.NewRacketRepository(db)
	shoeRepo := repositories.NewShoeRepository(db)
	shuttlecockRepo := repositories.NewShuttlecockRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	cartService := services.NewCartService(cartRepo, userRepo, productRepo)

	authHandler := handlers.NewAuthHandler(rnd, userRepo, tokenMaker, validate)
	productHandler := handlers.NewProductHandler(rnd, productRepo)
	racketHandler := handlers.NewRacketHandler(rnd, racketRepo, validate)
	shoeHandler := handlers.NewShoeHandler(rnd, shoeRepo, validate)
	shuttlecockHandler := handlers.NewShuttlecockHandler(rnd, shuttlecockRepo, validate)
	cartHandler := handlers.NewCartHandler(rnd, cartService)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.CORS(env.CorsOrigins))

	router.HandleFunc("/health", handlers.Health(rnd)).Methods("GET")

	auth := router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.Handle("/verify", middlewares.Authenticate(tokenMaker)(http.HandlerFunc(authHandler.Verify))).Methods("GET")

	router.HandleFunc("/products", productHandler.List).Methods("GET")

	rackets := router.PathPrefix("/rackets").Subrouter()
	rackets.HandleFunc("", racketHandler.List).Methods("GET")
	rackets.HandleFunc("", racketHandler.Create).Methods("POST")
	rackets.HandleFunc("/bulk", racketHandler.CreateBulk).Methods("POST")
	rackets.HandleFunc("/{id}", racketHandler.Get).Methods("GET")

	shoes := router.PathPrefix("/shoes").Subrouter()
	shoes.HandleFunc("", shoeHandler.List).Methods("GET")
	shoes.HandleFunc("", shoeHandler.Create).Methods("POST")
	shoes.HandleFunc("/bulk", shoeHandler.CreateBulk).Methods("POST")
	shoes.HandleFunc("/{id}", shoeHandler.Get).Methods("GET")

	shuttlecocks := router.PathPrefix("/shuttlecocks").Subrouter()
	shuttlecocks.HandleFunc("", shuttlecockHandler.List).Methods("GET")
	shuttlecocks.HandleFunc("", shuttlecockHandler.Create).Methods("POST")
	shuttlecocks.HandleFunc("/bulk", shuttlecockHandler.CreateBulk).Methods("POST")
	shuttlecocks.HandleFunc("/{id}", shuttlecockHandler.Get).Methods("GET")

	cart := router.PathPrefix("/shoppingcart").Subrouter()
	cart.HandleFunc("/{customerId}", cartHandler.Get).Methods("GET")
	cart.HandleFunc("/{customerId}", cartHandler.Clear).Methods("DELETE")
	cart.HandleFunc("/{customerId}/{productId}", cartHandler.Add).Methods("POST")
	cart.HandleFunc("/{customerId}/{productId}", cartHandler.Remove).Methods("DELETE")
	cart.HandleFunc("/{customerId}/{productId}/{quantity}", cartHandler.SetQuantity).Methods("POST")

	return router, nil
}

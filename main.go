package main

import (
	"log"
	"net/http"
	"os"

	"github.com/TheCodister/badminton-shop-api/app/cmd"
	"github.com/TheCodister/badminton-shop-api/app/configs"
	"github.com/TheCodister/badminton-shop-api/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set. Refusing to start without a signing secret.")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router, err := routes.NewRouter(db, env)
	if err != nil {
		log.Fatal("Failed to build router:", err)
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}

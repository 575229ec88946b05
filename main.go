package main

import (
	"log"
	"planeja-backend/database"
	"planeja-backend/handlers"
	"planeja-backend/utilities"

	"github.com/joho/godotenv"
)

func main() {
	utilities.InitLogger()

	err := godotenv.Load()
	if err != nil {
		log.Fatal("Erro ao carregar o arquivo .env")
	}
	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	handlers.InitDB(db)

	LoadRoutes()
}

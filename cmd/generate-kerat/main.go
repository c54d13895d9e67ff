package main

import (
	"flag"
	"log"

	"go-kerat-tracking/internal/repository"
	"go-kerat-tracking/internal/service"
	"go-kerat-tracking/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	count := flag.Int("n", 1, "number of kerat tokens to mint")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Mint
	keratService := service.NewKeratService(db, repository.NewKeratRepo(db))
	kerats, err := keratService.GenerateN(*count)
	for _, kerat := range kerats {
		log.Printf("✅ Minted kerat: %s", kerat.ID)
	}
	if err != nil {
		log.Fatalf("❌ Failed after %d kerat: %v", len(kerats), err)
	}
}

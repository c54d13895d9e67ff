package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-kerat-tracking/internal/handler"
	"go-kerat-tracking/internal/model"
	"go-kerat-tracking/internal/repository"
	"go-kerat-tracking/internal/service"
	"go-kerat-tracking/internal/ws"
	"go-kerat-tracking/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.Kerat{}, &model.Supplier{}, &model.BahanBaku{},
		&model.Pallet{}, &model.Oven{},
		&model.KomposisiMixing{}, &model.BatchProduksi{}, &model.Mixing{},
		&model.Sterilisasi{}, &model.Inokulasi{}, &model.Inkubasi{},
		&model.BatchTransfer{}, &model.Kumbung{},
	)

	// 3. Seed master data (pallet, oven, bahan baku + supplier)
	seedMasterData(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	keratRepo := repository.NewKeratRepo(db)
	masterRepo := repository.NewMasterRepo(db)
	dashRepo := repository.NewDashboardRepo(db)

	scanService := service.NewScanService(db, service.ScanRepos{
		Kerat:       keratRepo,
		Komposisi:   repository.NewKomposisiRepo(db),
		Batch:       repository.NewBatchRepo(db),
		Sterilisasi: repository.NewSterilisasiRepo(db),
		Inokulasi:   repository.NewInokulasiRepo(db),
		Inkubasi:    repository.NewInkubasiRepo(db),
		Transfer:    repository.NewTransferRepo(db),
		Kumbung:     repository.NewKumbungRepo(db),
		Master:      masterRepo,
	}, wsHub)
	keratService := service.NewKeratService(db, keratRepo)
	dashService := service.NewDashboardService(dashRepo)

	scanHandler := handler.NewScanHandler(scanService)
	keratHandler := handler.NewKeratHandler(keratService)
	masterHandler := handler.NewMasterHandler(masterRepo)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Kerat Tracking v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Scan submit: satu POST per transisi stage
	api.Post("/scan", scanHandler.Submit)

	// Kerat minting (alur halaman Generate)
	api.Post("/kerat", keratHandler.Generate)
	api.Get("/kerat", keratHandler.GetAll)
	api.Get("/kerat/latest", keratHandler.GetLatest)

	// Master data untuk form scan
	api.Get("/pallets", masterHandler.GetPallets)
	api.Get("/ovens", masterHandler.GetOvens)
	api.Get("/bahan-baku", masterHandler.GetBahanBaku)

	// Dashboard
	api.Get("/dashboard/stats", dashHandler.GetProductionStats)
	api.Get("/dashboard/baglog-movement", dashHandler.GetBaglogMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedMasterData creates the dropdown master data if the tables are empty
func seedMasterData(db *gorm.DB) {
	var count int64

	db.Model(&model.Pallet{}).Count(&count)
	if count == 0 {
		pallets := []model.Pallet{{ID: "P001"}, {ID: "P002"}, {ID: "P003"}, {ID: "P004"}}
		if err := db.Create(&pallets).Error; err != nil {
			log.Printf("Warning: Failed to seed pallets: %v", err)
		}
	}

	db.Model(&model.Oven{}).Count(&count)
	if count == 0 {
		ovens := []model.Oven{{ID: "O001"}, {ID: "O002"}}
		if err := db.Create(&ovens).Error; err != nil {
			log.Printf("Warning: Failed to seed ovens: %v", err)
		}
	}

	db.Model(&model.Supplier{}).Count(&count)
	if count == 0 {
		suppliers := []model.Supplier{
			{ID: "S01", Nama: "CV Rimba Lestari"},
			{ID: "S02", Nama: "UD Tani Makmur"},
		}
		if err := db.Create(&suppliers).Error; err != nil {
			log.Printf("Warning: Failed to seed suppliers: %v", err)
		}
	}

	db.Model(&model.BahanBaku{}).Count(&count)
	if count == 0 {
		bahanBaku := []model.BahanBaku{
			{ID: "SBK-S01", Nama: "Serbuk Kayu", SupplierID: "S01"},
			{ID: "POL-S02", Nama: "Polar", SupplierID: "S02"},
			{ID: "KPR-S02", Nama: "Kapur", SupplierID: "S02"},
			{ID: "TPJ-S02", Nama: "Tepung Jagung", SupplierID: "S02"},
		}
		if err := db.Create(&bahanBaku).Error; err != nil {
			log.Printf("Warning: Failed to seed bahan baku: %v", err)
		}
	}
}

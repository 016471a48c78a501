package main

import (
	"log"
	"os"
	"safety-forms-api/config"
	"safety-forms-api/internal/catalog"
	"safety-forms-api/internal/formbuilder"
	"safety-forms-api/internal/logs"
	"safety-forms-api/internal/lookup"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&formbuilder.FormTemplate{},
		&formbuilder.FormSection{},
		&formbuilder.FormField{},
		&formbuilder.FormWorkflow{},
		&lookup.CorElement{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://safety-forms-web-724838782318.us-west1.run.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	formBuilderService := &formbuilder.FormBuilderService{
		DB:            db,
		Logs:          logService,
		ArchiveBucket: cfg.ArchiveBucket,
	}
	formbuilder.RegisterRoutes(r, formBuilderService)

	catalogService := &catalog.CatalogService{DB: db}
	catalog.RegisterRoutes(r, catalogService)

	lookupService := lookup.NewLookupService(db)
	lookup.RegisterRoutes(r, lookupService)

	if err := lookupService.SeedCorElements(); err != nil {
		log.Fatal("Failed to seed COR elements:", err)
	}

	if cfg.SeedForms {
		result := formBuilderService.BulkImportFormsIfNotExists(formbuilder.SeedConfigs(), formbuilder.GlobalScope(), true)
		log.Printf("Seeded form templates: %d imported, %d skipped, %d failed", result.Successful, result.Skipped, result.Failed)
		for _, e := range result.Errors {
			log.Printf("Seed failure for %s: %s", e.FormName, e.Error)
		}
	}

	// --- Cloud Run expects plain HTTP, on $PORT, bind to 0.0.0.0 ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}

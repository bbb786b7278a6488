package main

import (
	"fmt"
	"log"
	"os"

	"libanalytics/pkg/analytics"
	"libanalytics/pkg/database"
	"libanalytics/pkg/dataset"
	"libanalytics/pkg/render"

	"gorm.io/gorm"
)

func main() {
	log.Println("Starting library analytics report...")

	db := openDB()
	if err := dataset.Seed(db); err != nil {
		log.Fatalf("Seeding sample data failed: %v", err)
	}

	ds, err := dataset.Load(db)
	if err != nil {
		log.Fatalf("Loading dataset failed: %v", err)
	}

	report, err := analytics.Compute(ds)
	if err != nil {
		log.Fatalf("Computing report failed: %v", err)
	}

	fmt.Println(render.Text(report))
	if getEnv("CHARTS", "true") == "true" {
		fmt.Println(render.Charts(report))
	}
}

// openDB picks the backing store: postgres when DB_DRIVER=postgres, an
// sqlite file (in-memory by default) otherwise.
func openDB() *gorm.DB {
	if getEnv("DB_DRIVER", "sqlite") == "postgres" {
		return database.InitPostgres()
	}
	path := getEnv("SQLITE_PATH", ":memory:")
	db, err := database.OpenSQLite(path)
	if err != nil {
		log.Fatalf("Failed to open sqlite database: %v", err)
	}
	return db
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

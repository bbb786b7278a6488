package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"libanalytics/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables is every entity table the pipeline reads, in dependency order.
var Tables = []interface{}{
	&models.Author{},
	&models.Publisher{},
	&models.Category{},
	&models.Book{},
	&models.BookAuthor{},
	&models.BookCategory{},
	&models.Member{},
	&models.Staff{},
	&models.BookCopy{},
	&models.Loan{},
	&models.Reservation{},
	&models.Fine{},
}

// joinKeys lists the foreign-key columns the join resolver depends on.
// A missing column here is a configuration error, not a per-row condition.
var joinKeys = []struct {
	model  interface{}
	column string
}{
	{&models.Book{}, "PublisherID"},
	{&models.BookAuthor{}, "BookID"},
	{&models.BookAuthor{}, "AuthorID"},
	{&models.BookCategory{}, "BookID"},
	{&models.BookCategory{}, "CategoryID"},
	{&models.BookCopy{}, "BookID"},
	{&models.Loan{}, "BookID"},
	{&models.Loan{}, "MemberID"},
	{&models.Loan{}, "StaffID"},
	{&models.Reservation{}, "BookID"},
	{&models.Reservation{}, "MemberID"},
	{&models.Fine{}, "LoanID"},
	{&models.Fine{}, "MemberID"},
}

// InitPostgres connects to the analytics database using the same env
// configuration scheme as the rest of our services, with connect retries.
func InitPostgres() *gorm.DB {
	host := getEnv("DB_HOST", "postgres")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "program")
	password := getEnv("DB_PASSWORD", "test")
	dbname := getEnv("DB_NAME", "library")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	log.Printf("Connecting to library database: %s@%s:%s/%s", user, host, port, dbname)

	var db *gorm.DB
	var err error
	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("Database connection attempt %d/%d failed: %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(5 * time.Second)
		}
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	log.Println("Database connection established successfully")
	return db
}

// OpenSQLite opens a file-backed or in-memory sqlite database and migrates
// the full schema. Used by the report CLI and by tests.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates all entity tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Tables...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// CheckSchema verifies that every join-key column the pipeline needs exists.
// The pipeline must abort before producing any result table if one is missing.
func CheckSchema(db *gorm.DB) error {
	m := db.Migrator()
	for _, t := range Tables {
		if !m.HasTable(t) {
			return fmt.Errorf("schema error: missing table for %T", t)
		}
	}
	for _, jk := range joinKeys {
		if !m.HasColumn(jk.model, jk.column) {
			return fmt.Errorf("schema error: %T is missing join key %s", jk.model, jk.column)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

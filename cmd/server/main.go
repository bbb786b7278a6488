package main

import (
	"log"
	"net/http"
	"os"
	"sync/atomic"

	"libanalytics/pkg/analytics"
	"libanalytics/pkg/database"
	"libanalytics/pkg/dataset"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	db *gorm.DB

	// report is read by every GET handler while the refresh handler
	// replaces it, each on its own request goroutine.
	report atomic.Pointer[analytics.Report]
)

func main() {
	log.Println("Starting analytics service...")

	if getEnv("DB_DRIVER", "postgres") == "sqlite" {
		var err error
		db, err = database.OpenSQLite(getEnv("SQLITE_PATH", ":memory:"))
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
	} else {
		db = database.InitPostgres()
	}

	if err := dataset.Seed(db); err != nil {
		log.Fatalf("Seeding sample data failed: %v", err)
	}
	r, err := recompute()
	if err != nil {
		log.Fatalf("Initial report computation failed: %v", err)
	}
	log.Printf("Report %s computed", r.ReportID)

	server := gin.Default()
	server.GET("/api/v1/analytics/report", getReport)
	server.GET("/api/v1/analytics/collection", getCollection)
	server.GET("/api/v1/analytics/circulation", getCirculation)
	server.GET("/api/v1/analytics/fines", getFines)
	server.GET("/api/v1/analytics/staff", getStaff)
	server.POST("/api/v1/analytics/refresh", refreshReport)
	server.GET("/manage/health", healthCheck)

	log.Println("Analytics service starting on :8080")
	if err := server.Run(":8080"); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// recompute reloads the dataset from the database, rebuilds the report and
// publishes it only once fully built, so readers always see a complete one.
func recompute() (*analytics.Report, error) {
	ds, err := dataset.Load(db)
	if err != nil {
		return nil, err
	}
	r, err := analytics.Compute(ds)
	if err != nil {
		return nil, err
	}
	report.Store(r)
	return r, nil
}

func getReport(c *gin.Context) {
	c.JSON(http.StatusOK, report.Load())
}

func getCollection(c *gin.Context) {
	r := report.Load()
	c.JSON(http.StatusOK, gin.H{
		"reportId":        r.ReportID,
		"decadeCounts":    r.DecadeCounts,
		"categoryCounts":  r.CategoryCounts,
		"authorCounts":    r.AuthorCounts,
		"publisherCounts": r.PublisherCounts,
	})
}

func getCirculation(c *gin.Context) {
	r := report.Load()
	c.JSON(http.StatusOK, gin.H{
		"reportId":             r.ReportID,
		"monthlyCirculation":   r.MonthlyCirculation,
		"popularBooks":         r.PopularBooks,
		"activeMembers":        r.ActiveMembers,
		"statusCounts":         r.StatusCounts,
		"averageLoanDuration":  r.AverageLoanDuration,
		"durationDistribution": r.DurationDistribution,
		"overdueCount":         r.OverdueCount,
		"overduePercent":       r.OverduePercent,
	})
}

func getFines(c *gin.Context) {
	r := report.Load()
	c.JSON(http.StatusOK, gin.H{
		"reportId":   r.ReportID,
		"fineTotals": r.FineTotals,
	})
}

func getStaff(c *gin.Context) {
	r := report.Load()
	c.JSON(http.StatusOK, gin.H{
		"reportId":        r.ReportID,
		"staffLoanCounts": r.StaffLoanCounts,
	})
}

func refreshReport(c *gin.Context) {
	r, err := recompute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reportId":    r.ReportID,
		"generatedAt": r.GeneratedAt,
	})
}

func healthCheck(ctx *gin.Context) {
	sqlDB, err := db.DB()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
			"error":   err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"details": "Host localhost:8080 is active",
	})
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

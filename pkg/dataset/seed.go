package dataset

import (
	"log"

	"libanalytics/pkg/models"

	"gorm.io/gorm"
)

// Seed inserts the sample library dataset. It is a no-op when books already
// exist, so repeated startups do not duplicate rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Dataset already seeded, skipping")
		return nil
	}

	s := Sample()
	batches := []interface{}{
		s.Authors,
		s.Publishers,
		s.Categories,
		s.Books,
		s.BookAuthors,
		s.BookCategories,
		s.Members,
		s.Staff,
		s.BookCopies,
		s.Loans,
		s.Reservations,
		s.Fines,
	}
	for _, rows := range batches {
		if err := db.Create(rows).Error; err != nil {
			return err
		}
	}
	log.Println("Library sample data seeded")
	return nil
}

package dataset

import (
	"fmt"

	"libanalytics/pkg/database"
	"libanalytics/pkg/models"

	"gorm.io/gorm"
)

// Dataset holds the twelve entity tables as ordered in-memory slices.
// Row order within a table is primary-key order, which matches insertion
// order for the seeded data; downstream stages rely on it for deterministic
// output. The pipeline never mutates these slices.
type Dataset struct {
	Authors        []models.Author
	Publishers     []models.Publisher
	Categories     []models.Category
	Books          []models.Book
	BookAuthors    []models.BookAuthor
	BookCategories []models.BookCategory
	Members        []models.Member
	Staff          []models.Staff
	BookCopies     []models.BookCopy
	Loans          []models.Loan
	Reservations   []models.Reservation
	Fines          []models.Fine
}

// TableCount pairs a table's display name with its record count.
type TableCount struct {
	Table   string `json:"table"`
	Records int    `json:"records"`
}

// Load reads every entity table into memory. It fails fast if the schema is
// missing a table or a join-key column.
func Load(db *gorm.DB) (*Dataset, error) {
	if err := database.CheckSchema(db); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	steps := []struct {
		name string
		run  func() error
	}{
		{"authors", func() error { return db.Order("author_id").Find(&ds.Authors).Error }},
		{"publishers", func() error { return db.Order("publisher_id").Find(&ds.Publishers).Error }},
		{"categories", func() error { return db.Order("category_id").Find(&ds.Categories).Error }},
		{"books", func() error { return db.Order("book_id").Find(&ds.Books).Error }},
		{"book_authors", func() error { return db.Order("book_id, author_id").Find(&ds.BookAuthors).Error }},
		{"book_categories", func() error { return db.Order("book_id, category_id").Find(&ds.BookCategories).Error }},
		{"members", func() error { return db.Order("member_id").Find(&ds.Members).Error }},
		{"staff", func() error { return db.Order("staff_id").Find(&ds.Staff).Error }},
		{"book_copies", func() error { return db.Order("copy_id").Find(&ds.BookCopies).Error }},
		{"loans", func() error { return db.Order("loan_id").Find(&ds.Loans).Error }},
		{"reservations", func() error { return db.Order("reservation_id").Find(&ds.Reservations).Error }},
		{"fines", func() error { return db.Order("fine_id").Find(&ds.Fines).Error }},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("load %s: %w", s.name, err)
		}
	}
	return ds, nil
}

// TableCounts returns record counts per table in a fixed presentation order.
func (ds *Dataset) TableCounts() []TableCount {
	return []TableCount{
		{"Authors", len(ds.Authors)},
		{"Publishers", len(ds.Publishers)},
		{"Categories", len(ds.Categories)},
		{"Books", len(ds.Books)},
		{"Book Authors", len(ds.BookAuthors)},
		{"Book Categories", len(ds.BookCategories)},
		{"Members", len(ds.Members)},
		{"Staff", len(ds.Staff)},
		{"Book Copies", len(ds.BookCopies)},
		{"Loans", len(ds.Loans)},
		{"Reservations", len(ds.Reservations)},
		{"Fines", len(ds.Fines)},
	}
}

// Package analytics turns the raw library tables into denormalized views,
// derived per-row fields and aggregated result tables. Every stage produces
// a new table; the source dataset is never mutated.
package analytics

import (
	"time"

	"libanalytics/pkg/dataset"
	"libanalytics/pkg/models"
)

// BookInfoRow is one row of the denormalized book view: one row per
// (book, author) pair with the publisher name attached. Books with no
// recorded author do not appear; that is the inner-join policy of the
// reports, not an accident.
type BookInfoRow struct {
	BookID          uint      `json:"bookId"`
	Title           string    `json:"title"`
	PublicationDate time.Time `json:"publicationDate"`
	Pages           int       `json:"pages"`
	AuthorID        uint      `json:"authorId"`
	Author          string    `json:"author"`
	Nationality     string    `json:"nationality"`
	Publisher       string    `json:"publisher"`
}

// BookCategoryRow is one row per (book, category) pair.
type BookCategoryRow struct {
	BookID   uint   `json:"bookId"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// BookPublisherRow is one row per book with its publisher resolved.
type BookPublisherRow struct {
	BookID    uint   `json:"bookId"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
}

// LoanInfoRow is one row of the denormalized loan view: loan joined with
// member and with BookInfo. A book with several authors multiplies its
// loans into one row per author; the fan-out is kept as-is.
type LoanInfoRow struct {
	LoanID       uint       `json:"loanId"`
	BookID       uint       `json:"bookId"`
	MemberID     uint       `json:"memberId"`
	StaffID      uint       `json:"staffId"`
	CheckoutDate time.Time  `json:"checkoutDate"`
	DueDate      time.Time  `json:"dueDate"`
	ReturnDate   *time.Time `json:"returnDate,omitempty"`
	Status       string     `json:"status"`
	Member       string     `json:"member"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Publisher    string     `json:"publisher"`
}

// BuildBookPublisher joins every book with its publisher. A book whose
// publisher id has no matching row is dropped.
func BuildBookPublisher(ds *dataset.Dataset) []BookPublisherRow {
	pubByID := make(map[uint]models.Publisher, len(ds.Publishers))
	for _, p := range ds.Publishers {
		pubByID[p.PublisherID] = p
	}

	rows := make([]BookPublisherRow, 0, len(ds.Books))
	for _, b := range ds.Books {
		pub, ok := pubByID[b.PublisherID]
		if !ok {
			continue
		}
		rows = append(rows, BookPublisherRow{
			BookID:    b.BookID,
			Title:     b.Title,
			Publisher: pub.Name,
		})
	}
	return rows
}

// BuildBookInfo composes Book with BookAuthor, Author and the publisher
// name. Output follows book order, with a book's author links in link-table
// order.
func BuildBookInfo(ds *dataset.Dataset) []BookInfoRow {
	authorByID := make(map[uint]models.Author, len(ds.Authors))
	for _, a := range ds.Authors {
		authorByID[a.AuthorID] = a
	}
	publisherNames := make(map[uint]string, len(ds.Books))
	for _, bp := range BuildBookPublisher(ds) {
		publisherNames[bp.BookID] = bp.Publisher
	}
	linksByBook := make(map[uint][]models.BookAuthor)
	for _, ba := range ds.BookAuthors {
		linksByBook[ba.BookID] = append(linksByBook[ba.BookID], ba)
	}

	var rows []BookInfoRow
	for _, b := range ds.Books {
		pub, ok := publisherNames[b.BookID]
		if !ok {
			continue
		}
		for _, link := range linksByBook[b.BookID] {
			author, ok := authorByID[link.AuthorID]
			if !ok {
				continue
			}
			rows = append(rows, BookInfoRow{
				BookID:          b.BookID,
				Title:           b.Title,
				PublicationDate: b.PublicationDate,
				Pages:           b.Pages,
				AuthorID:        author.AuthorID,
				Author:          author.FullName(),
				Nationality:     author.Nationality,
				Publisher:       pub,
			})
		}
	}
	return rows
}

// BuildBookCategories composes Book with BookCategory and Category, one row
// per (book, category) pair. Books with no recorded category do not appear.
func BuildBookCategories(ds *dataset.Dataset) []BookCategoryRow {
	categoryByID := make(map[uint]models.Category, len(ds.Categories))
	for _, c := range ds.Categories {
		categoryByID[c.CategoryID] = c
	}
	linksByBook := make(map[uint][]models.BookCategory)
	for _, bc := range ds.BookCategories {
		linksByBook[bc.BookID] = append(linksByBook[bc.BookID], bc)
	}

	var rows []BookCategoryRow
	for _, b := range ds.Books {
		for _, link := range linksByBook[b.BookID] {
			cat, ok := categoryByID[link.CategoryID]
			if !ok {
				continue
			}
			rows = append(rows, BookCategoryRow{
				BookID:   b.BookID,
				Title:    b.Title,
				Category: cat.Name,
			})
		}
	}
	return rows
}

// BuildLoanInfo composes Loan with Member and with the BookInfo view.
// Loans keep their table order; the BookInfo fan-out appends one row per
// matching (book, author) pair. Loans of members or books that cannot be
// resolved are dropped, which also removes loans of books without a
// recorded author from all loan-level aggregations.
func BuildLoanInfo(ds *dataset.Dataset, bookInfo []BookInfoRow) []LoanInfoRow {
	memberByID := make(map[uint]models.Member, len(ds.Members))
	for _, m := range ds.Members {
		memberByID[m.MemberID] = m
	}
	infoByBook := make(map[uint][]BookInfoRow)
	for _, bi := range bookInfo {
		infoByBook[bi.BookID] = append(infoByBook[bi.BookID], bi)
	}

	var rows []LoanInfoRow
	for _, l := range ds.Loans {
		member, ok := memberByID[l.MemberID]
		if !ok {
			continue
		}
		// Copy the return date so view rows never alias the dataset.
		var returnDate *time.Time
		if returned, ok := l.Returned(); ok {
			returnDate = &returned
		}
		for _, bi := range infoByBook[l.BookID] {
			rows = append(rows, LoanInfoRow{
				LoanID:       l.LoanID,
				BookID:       l.BookID,
				MemberID:     l.MemberID,
				StaffID:      l.StaffID,
				CheckoutDate: l.CheckoutDate,
				DueDate:      l.DueDate,
				ReturnDate:   returnDate,
				Status:       l.Status,
				Member:       member.FullName(),
				Title:        bi.Title,
				Author:       bi.Author,
				Publisher:    bi.Publisher,
			})
		}
	}
	return rows
}

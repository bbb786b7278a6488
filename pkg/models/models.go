package models

import (
	"time"
)

const (
	LoanBorrowed = "Borrowed"
	LoanReturned = "Returned"
	LoanOverdue  = "Overdue"

	FinePending = "Pending"
	FinePaid    = "Paid"

	MemberActive    = "Active"
	MemberInactive  = "Inactive"
	MemberSuspended = "Suspended"

	CopyAvailable = "Available"
	CopyLoaned    = "Loaned"
	CopyLost      = "Lost"

	ReservationPending   = "Pending"
	ReservationFulfilled = "Fulfilled"
	ReservationCancelled = "Cancelled"
)

type Author struct {
	AuthorID    uint   `gorm:"primaryKey"`
	FirstName   string `gorm:"size:80;not null"`
	LastName    string `gorm:"size:80;not null"`
	Biography   string
	DateOfBirth time.Time
	Nationality string `gorm:"size:40"`
}

type Publisher struct {
	PublisherID uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:120;not null"`
	Address     string
	Phone       string `gorm:"size:20"`
	Email       string `gorm:"size:120"`
	Website     string `gorm:"size:120"`
}

type Category struct {
	CategoryID  uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:80;not null;uniqueIndex"`
	Description string
}

type Book struct {
	BookID          uint   `gorm:"primaryKey"`
	ISBN            string `gorm:"size:17;uniqueIndex"`
	Title           string `gorm:"not null"`
	PublisherID     uint   `gorm:"not null"`
	PublicationDate time.Time
	Edition         string `gorm:"size:40"`
	Language        string `gorm:"size:30"`
	Pages           int    `gorm:"check:pages > 0"`
	Description     string
	ShelfLocation   string `gorm:"size:10"`

	Publisher Publisher `gorm:"foreignKey:PublisherID"`
}

type BookAuthor struct {
	BookID   uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"primaryKey"`

	Book   Book   `gorm:"foreignKey:BookID"`
	Author Author `gorm:"foreignKey:AuthorID"`
}

type BookCategory struct {
	BookID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`

	Book     Book     `gorm:"foreignKey:BookID"`
	Category Category `gorm:"foreignKey:CategoryID"`
}

type Member struct {
	MemberID         uint   `gorm:"primaryKey"`
	FirstName        string `gorm:"size:80;not null"`
	LastName         string `gorm:"size:80;not null"`
	Email            string `gorm:"size:120;uniqueIndex"`
	Phone            string `gorm:"size:20"`
	Address          string
	DateOfBirth      time.Time
	MembershipDate   time.Time
	MembershipExpiry time.Time
	MembershipStatus string `gorm:"size:20;default:'Active'"`
}

type Staff struct {
	StaffID   uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:80;not null"`
	LastName  string `gorm:"size:80;not null"`
	Email     string `gorm:"size:120;uniqueIndex"`
	Phone     string `gorm:"size:20"`
	Position  string `gorm:"size:60"`
	HireDate  time.Time
	Username  string `gorm:"size:40;uniqueIndex"`
}

type BookCopy struct {
	CopyID          uint `gorm:"primaryKey"`
	BookID          uint `gorm:"not null"`
	AcquisitionDate time.Time
	Price           float64 `gorm:"check:price >= 0"`
	Condition       string  `gorm:"size:20;default:'Good'"`
	Status          string  `gorm:"size:20;default:'Available'"`

	Book Book `gorm:"foreignKey:BookID"`
}

// Loan joins on BookID rather than CopyID; that mirrors how circulation
// records were kept in the source system.
type Loan struct {
	LoanID       uint `gorm:"primaryKey"`
	BookID       uint `gorm:"not null"`
	MemberID     uint `gorm:"not null"`
	StaffID      uint `gorm:"not null"`
	CheckoutDate time.Time
	DueDate      time.Time
	ReturnDate   *time.Time // nil while the loan is still open
	Status       string     `gorm:"size:20;not null"`

	Book   Book   `gorm:"foreignKey:BookID"`
	Member Member `gorm:"foreignKey:MemberID"`
	Staff  Staff  `gorm:"foreignKey:StaffID"`
}

type Reservation struct {
	ReservationID   uint `gorm:"primaryKey"`
	BookID          uint `gorm:"not null"`
	MemberID        uint `gorm:"not null"`
	ReservationDate time.Time
	ExpiryDate      time.Time
	Status          string `gorm:"size:20;not null"`

	Book   Book   `gorm:"foreignKey:BookID"`
	Member Member `gorm:"foreignKey:MemberID"`
}

type Fine struct {
	FineID      uint    `gorm:"primaryKey"`
	LoanID      uint    `gorm:"not null"`
	MemberID    uint    `gorm:"not null"`
	Amount      float64 `gorm:"check:amount >= 0"`
	IssuedDate  time.Time
	PaymentDate *time.Time // nil until the fine is paid
	Status      string     `gorm:"size:20;not null"`

	Loan   Loan   `gorm:"foreignKey:LoanID"`
	Member Member `gorm:"foreignKey:MemberID"`
}

// Returned reports the return timestamp of a loan, if it has one.
func (l Loan) Returned() (time.Time, bool) {
	if l.ReturnDate == nil {
		return time.Time{}, false
	}
	return *l.ReturnDate, true
}

// FullName joins first and last name the way the reports print people.
func (m Member) FullName() string { return m.FirstName + " " + m.LastName }

func (s Staff) FullName() string { return s.FirstName + " " + s.LastName }

func (a Author) FullName() string { return a.FirstName + " " + a.LastName }

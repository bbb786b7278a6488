package dataset

import (
	"time"

	"libanalytics/pkg/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("bad seed date: " + s)
	}
	return t
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic("bad seed timestamp: " + s)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

// Sample returns the canonical library dataset used by the report CLI and
// the tests. It matches the rows the circulation system ships as seed data.
func Sample() *Dataset {
	authors := []models.Author{
		{AuthorID: 1, FirstName: "J.K.", LastName: "Rowling", Biography: "British author best known for the Harry Potter series", DateOfBirth: date("1965-07-31"), Nationality: "British"},
		{AuthorID: 2, FirstName: "George R.R.", LastName: "Martin", Biography: "American novelist known for A Song of Ice and Fire", DateOfBirth: date("1948-09-20"), Nationality: "American"},
		{AuthorID: 3, FirstName: "Jane", LastName: "Austen", Biography: "English novelist known for Pride and Prejudice", DateOfBirth: date("1775-12-16"), Nationality: "English"},
		{AuthorID: 4, FirstName: "Stephen", LastName: "King", Biography: "American author of horror and supernatural fiction", DateOfBirth: date("1947-09-21"), Nationality: "American"},
		{AuthorID: 5, FirstName: "Agatha", LastName: "Christie", Biography: "English writer known for detective novels", DateOfBirth: date("1890-09-15"), Nationality: "English"},
	}

	publishers := []models.Publisher{
		{PublisherID: 1, Name: "Penguin Random House", Address: "1745 Broadway, New York, NY 10019", Phone: "212-782-9000", Email: "info@penguinrandomhouse.com", Website: "www.penguinrandomhouse.com"},
		{PublisherID: 2, Name: "HarperCollins", Address: "195 Broadway, New York, NY 10007", Phone: "212-207-7000", Email: "info@harpercollins.com", Website: "www.harpercollins.com"},
		{PublisherID: 3, Name: "Simon & Schuster", Address: "1230 Avenue of the Americas, New York, NY 10020", Phone: "212-698-7000", Email: "info@simonandschuster.com", Website: "www.simonandschuster.com"},
		{PublisherID: 4, Name: "Macmillan Publishers", Address: "120 Broadway, New York, NY 10271", Phone: "646-307-5151", Email: "info@macmillan.com", Website: "www.macmillan.com"},
		{PublisherID: 5, Name: "Hachette Book Group", Address: "1290 Avenue of the Americas, New York, NY 10104", Phone: "212-364-1100", Email: "info@hbgusa.com", Website: "www.hachettebookgroup.com"},
	}

	categories := []models.Category{
		{CategoryID: 1, Name: "Fiction", Description: "Fictional literature including novels, short stories, etc."},
		{CategoryID: 2, Name: "Non-Fiction", Description: "Literature based on facts, real events, and real people"},
		{CategoryID: 3, Name: "Science Fiction", Description: "Fiction based on imaginative concepts like futuristic science and technology"},
		{CategoryID: 4, Name: "Fantasy", Description: "Fiction featuring magical and supernatural elements"},
		{CategoryID: 5, Name: "Mystery", Description: "Fiction dealing with the solution of a crime or puzzle"},
		{CategoryID: 6, Name: "Biography", Description: "Non-fictional account of a person's life"},
		{CategoryID: 7, Name: "History", Description: "Non-fiction about past events"},
		{CategoryID: 8, Name: "Self-Help", Description: "Books on personal development"},
		{CategoryID: 9, Name: "Children's", Description: "Books for children"},
		{CategoryID: 10, Name: "Young Adult", Description: "Books for teenagers and young adults"},
	}

	books := []models.Book{
		{BookID: 1, ISBN: "9780747532743", Title: "Harry Potter and the Philosopher's Stone", PublisherID: 1, PublicationDate: date("1997-06-26"), Edition: "1st", Language: "English", Pages: 223, Description: "The first novel in the Harry Potter series", ShelfLocation: "A1-S1"},
		{BookID: 2, ISBN: "9780547928227", Title: "The Hobbit", PublisherID: 2, PublicationDate: date("1937-09-21"), Edition: "75th Anniversary", Language: "English", Pages: 300, Description: "Fantasy novel by J.R.R. Tolkien", ShelfLocation: "A2-S2"},
		{BookID: 3, ISBN: "9780141439518", Title: "Pride and Prejudice", PublisherID: 1, PublicationDate: date("1813-01-28"), Edition: "Penguin Classics", Language: "English", Pages: 432, Description: "Novel by Jane Austen", ShelfLocation: "B1-S3"},
		{BookID: 4, ISBN: "9780307743657", Title: "The Shining", PublisherID: 3, PublicationDate: date("1977-01-28"), Edition: "Reprint", Language: "English", Pages: 688, Description: "Horror novel by Stephen King", ShelfLocation: "C1-S4"},
		{BookID: 5, ISBN: "9780062073495", Title: "Murder on the Orient Express", PublisherID: 2, PublicationDate: date("1934-01-01"), Edition: "Reprint", Language: "English", Pages: 256, Description: "Detective novel by Agatha Christie", ShelfLocation: "D1-S5"},
	}

	// The Hobbit deliberately has no author link; the join policy drops it
	// from author-based views.
	bookAuthors := []models.BookAuthor{
		{BookID: 1, AuthorID: 1},
		{BookID: 3, AuthorID: 3},
		{BookID: 4, AuthorID: 4},
		{BookID: 5, AuthorID: 5},
	}

	bookCategories := []models.BookCategory{
		{BookID: 1, CategoryID: 4},
		{BookID: 1, CategoryID: 10},
		{BookID: 3, CategoryID: 1},
		{BookID: 4, CategoryID: 1},
		{BookID: 4, CategoryID: 5},
		{BookID: 5, CategoryID: 1},
		{BookID: 5, CategoryID: 5},
	}

	members := []models.Member{
		{MemberID: 1, FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Phone: "555-123-4567", Address: "123 Main St, Anytown, AN 12345", DateOfBirth: date("1985-04-15"), MembershipDate: date("2023-01-01"), MembershipExpiry: date("2024-01-01"), MembershipStatus: "Active"},
		{MemberID: 2, FirstName: "Emily", LastName: "Johnson", Email: "emily.j@email.com", Phone: "555-234-5678", Address: "456 Oak Ave, Somewhere, SW 23456", DateOfBirth: date("1990-07-22"), MembershipDate: date("2023-02-15"), MembershipExpiry: date("2024-02-15"), MembershipStatus: "Active"},
		{MemberID: 3, FirstName: "Michael", LastName: "Williams", Email: "mwilliams@email.com", Phone: "555-345-6789", Address: "789 Pine Rd, Nowhere, NW 34567", DateOfBirth: date("1978-11-30"), MembershipDate: date("2023-03-10"), MembershipExpiry: date("2024-03-10"), MembershipStatus: "Active"},
		{MemberID: 4, FirstName: "Sarah", LastName: "Brown", Email: "sarahb@email.com", Phone: "555-456-7890", Address: "101 Elm Blvd, Anywhere, AW 45678", DateOfBirth: date("1995-02-18"), MembershipDate: date("2023-04-05"), MembershipExpiry: date("2024-04-05"), MembershipStatus: "Active"},
		{MemberID: 5, FirstName: "David", LastName: "Jones", Email: "djones@email.com", Phone: "555-567-8901", Address: "202 Maple Dr, Elsewhere, EW 56789", DateOfBirth: date("1982-09-03"), MembershipDate: date("2023-05-20"), MembershipExpiry: date("2024-05-20"), MembershipStatus: "Active"},
	}

	staff := []models.Staff{
		{StaffID: 1, FirstName: "Robert", LastName: "Anderson", Email: "randerson@library.com", Phone: "555-987-6543", Position: "Head Librarian", HireDate: date("2018-06-01"), Username: "randerson"},
		{StaffID: 2, FirstName: "Jennifer", LastName: "Thomas", Email: "jthomas@library.com", Phone: "555-876-5432", Position: "Librarian", HireDate: date("2019-03-15"), Username: "jthomas"},
		{StaffID: 3, FirstName: "William", LastName: "Martinez", Email: "wmartinez@library.com", Phone: "555-765-4321", Position: "Assistant Librarian", HireDate: date("2020-01-10"), Username: "wmartinez"},
		{StaffID: 4, FirstName: "Elizabeth", LastName: "Taylor", Email: "etaylor@library.com", Phone: "555-654-3210", Position: "Library Technician", HireDate: date("2021-07-01"), Username: "etaylor"},
		{StaffID: 5, FirstName: "Richard", LastName: "Garcia", Email: "rgarcia@library.com", Phone: "555-543-2109", Position: "Library Assistant", HireDate: date("2022-02-15"), Username: "rgarcia"},
	}

	copies := []models.BookCopy{
		{CopyID: 1, BookID: 1, AcquisitionDate: date("2020-01-15"), Price: 15.99, Condition: "Good", Status: "Available"},
		{CopyID: 2, BookID: 1, AcquisitionDate: date("2021-03-10"), Price: 17.99, Condition: "New", Status: "Available"},
		{CopyID: 3, BookID: 2, AcquisitionDate: date("2020-02-20"), Price: 12.99, Condition: "Good", Status: "Available"},
		{CopyID: 4, BookID: 3, AcquisitionDate: date("2020-03-25"), Price: 9.99, Condition: "Fair", Status: "Available"},
		{CopyID: 5, BookID: 3, AcquisitionDate: date("2021-05-15"), Price: 11.99, Condition: "New", Status: "Available"},
		{CopyID: 6, BookID: 4, AcquisitionDate: date("2020-04-10"), Price: 14.99, Condition: "Good", Status: "Available"},
		{CopyID: 7, BookID: 5, AcquisitionDate: date("2020-05-05"), Price: 13.99, Condition: "Good", Status: "Available"},
		{CopyID: 8, BookID: 5, AcquisitionDate: date("2021-06-20"), Price: 15.99, Condition: "New", Status: "Available"},
	}

	loans := []models.Loan{
		{LoanID: 1, BookID: 1, MemberID: 1, StaffID: 1, CheckoutDate: ts("2023-06-01 10:30:00"), DueDate: ts("2023-06-15 10:30:00"), ReturnDate: tsp("2023-06-14 15:45:00"), Status: "Returned"},
		{LoanID: 2, BookID: 3, MemberID: 2, StaffID: 2, CheckoutDate: ts("2023-06-05 14:15:00"), DueDate: ts("2023-06-19 14:15:00"), Status: "Borrowed"},
		{LoanID: 3, BookID: 4, MemberID: 3, StaffID: 1, CheckoutDate: ts("2023-06-10 11:00:00"), DueDate: ts("2023-06-24 11:00:00"), ReturnDate: tsp("2023-06-30 09:30:00"), Status: "Returned"},
		{LoanID: 4, BookID: 5, MemberID: 4, StaffID: 3, CheckoutDate: ts("2023-06-15 16:30:00"), DueDate: ts("2023-06-29 16:30:00"), Status: "Overdue"},
		{LoanID: 5, BookID: 1, MemberID: 2, StaffID: 1, CheckoutDate: ts("2023-07-01 09:30:00"), DueDate: ts("2023-07-15 09:30:00"), ReturnDate: tsp("2023-07-12 14:00:00"), Status: "Returned"},
		{LoanID: 6, BookID: 2, MemberID: 3, StaffID: 2, CheckoutDate: ts("2023-07-05 10:45:00"), DueDate: ts("2023-07-19 10:45:00"), ReturnDate: tsp("2023-07-17 16:30:00"), Status: "Returned"},
		{LoanID: 7, BookID: 3, MemberID: 4, StaffID: 1, CheckoutDate: ts("2023-07-10 11:30:00"), DueDate: ts("2023-07-24 11:30:00"), Status: "Borrowed"},
		{LoanID: 8, BookID: 4, MemberID: 5, StaffID: 3, CheckoutDate: ts("2023-07-15 14:00:00"), DueDate: ts("2023-07-29 14:00:00"), Status: "Borrowed"},
		{LoanID: 9, BookID: 5, MemberID: 1, StaffID: 2, CheckoutDate: ts("2023-07-20 15:45:00"), DueDate: ts("2023-08-03 15:45:00"), ReturnDate: tsp("2023-07-30 10:15:00"), Status: "Returned"},
		{LoanID: 10, BookID: 1, MemberID: 3, StaffID: 1, CheckoutDate: ts("2023-08-01 10:00:00"), DueDate: ts("2023-08-15 10:00:00"), ReturnDate: tsp("2023-08-14 11:45:00"), Status: "Returned"},
		{LoanID: 11, BookID: 2, MemberID: 4, StaffID: 2, CheckoutDate: ts("2023-08-05 13:30:00"), DueDate: ts("2023-08-19 13:30:00"), ReturnDate: tsp("2023-08-20 09:30:00"), Status: "Returned"},
		{LoanID: 12, BookID: 3, MemberID: 5, StaffID: 3, CheckoutDate: ts("2023-08-10 14:15:00"), DueDate: ts("2023-08-24 14:15:00"), ReturnDate: tsp("2023-08-22 16:00:00"), Status: "Returned"},
		{LoanID: 13, BookID: 4, MemberID: 1, StaffID: 1, CheckoutDate: ts("2023-08-15 11:00:00"), DueDate: ts("2023-08-29 11:00:00"), Status: "Overdue"},
		{LoanID: 14, BookID: 5, MemberID: 2, StaffID: 2, CheckoutDate: ts("2023-08-20 16:30:00"), DueDate: ts("2023-09-03 16:30:00"), ReturnDate: tsp("2023-09-01 14:45:00"), Status: "Returned"},
		{LoanID: 15, BookID: 1, MemberID: 4, StaffID: 3, CheckoutDate: ts("2023-09-01 09:45:00"), DueDate: ts("2023-09-15 09:45:00"), ReturnDate: tsp("2023-09-12 10:30:00"), Status: "Returned"},
		{LoanID: 16, BookID: 2, MemberID: 5, StaffID: 1, CheckoutDate: ts("2023-09-05 11:15:00"), DueDate: ts("2023-09-19 11:15:00"), ReturnDate: tsp("2023-09-18 15:00:00"), Status: "Returned"},
		{LoanID: 17, BookID: 3, MemberID: 1, StaffID: 2, CheckoutDate: ts("2023-09-10 14:30:00"), DueDate: ts("2023-09-24 14:30:00"), ReturnDate: tsp("2023-09-23 11:30:00"), Status: "Returned"},
		{LoanID: 18, BookID: 4, MemberID: 2, StaffID: 3, CheckoutDate: ts("2023-09-15 13:00:00"), DueDate: ts("2023-09-29 13:00:00"), Status: "Borrowed"},
		{LoanID: 19, BookID: 5, MemberID: 3, StaffID: 1, CheckoutDate: ts("2023-09-20 15:30:00"), DueDate: ts("2023-10-04 15:30:00"), ReturnDate: tsp("2023-10-03 10:45:00"), Status: "Returned"},
		{LoanID: 20, BookID: 1, MemberID: 5, StaffID: 2, CheckoutDate: ts("2023-10-01 10:15:00"), DueDate: ts("2023-10-15 10:15:00"), Status: "Borrowed"},
	}

	reservations := []models.Reservation{
		{ReservationID: 1, BookID: 2, MemberID: 5, ReservationDate: ts("2023-06-20 09:45:00"), ExpiryDate: ts("2023-06-27 09:45:00"), Status: "Pending"},
		{ReservationID: 2, BookID: 1, MemberID: 3, ReservationDate: ts("2023-06-25 13:20:00"), ExpiryDate: ts("2023-07-02 13:20:00"), Status: "Fulfilled"},
		{ReservationID: 3, BookID: 3, MemberID: 1, ReservationDate: ts("2023-07-05 11:30:00"), ExpiryDate: ts("2023-07-12 11:30:00"), Status: "Pending"},
		{ReservationID: 4, BookID: 4, MemberID: 2, ReservationDate: ts("2023-07-10 15:45:00"), ExpiryDate: ts("2023-07-17 15:45:00"), Status: "Cancelled"},
		{ReservationID: 5, BookID: 5, MemberID: 4, ReservationDate: ts("2023-07-15 14:00:00"), ExpiryDate: ts("2023-07-22 14:00:00"), Status: "Fulfilled"},
	}

	fines := []models.Fine{
		{FineID: 1, LoanID: 3, MemberID: 3, Amount: 6.00, IssuedDate: ts("2023-06-30 10:00:00"), PaymentDate: tsp("2023-07-05 11:30:00"), Status: "Paid"},
		{FineID: 2, LoanID: 4, MemberID: 4, Amount: 10.00, IssuedDate: ts("2023-07-10 14:15:00"), Status: "Pending"},
		{FineID: 3, LoanID: 11, MemberID: 4, Amount: 1.00, IssuedDate: ts("2023-08-20 10:00:00"), PaymentDate: tsp("2023-08-25 11:45:00"), Status: "Paid"},
		{FineID: 4, LoanID: 13, MemberID: 1, Amount: 12.00, IssuedDate: ts("2023-09-05 09:30:00"), Status: "Pending"},
	}

	return &Dataset{
		Authors:        authors,
		Publishers:     publishers,
		Categories:     categories,
		Books:          books,
		BookAuthors:    bookAuthors,
		BookCategories: bookCategories,
		Members:        members,
		Staff:          staff,
		BookCopies:     copies,
		Loans:          loans,
		Reservations:   reservations,
		Fines:          fines,
	}
}

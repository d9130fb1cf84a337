package book

import "time"

// SeedData returns example books to pre-populate the repository.
func SeedData(ids IDGenerator, now time.Time) []Book {
	inputs := []Input{
		{
			Name:      "Dunia Sophie",
			Year:      1991,
			Author:    "Jostein Gaarder",
			Summary:   "A novel about the history of philosophy.",
			Publisher: "Mizan",
			PageCount: 200,
			ReadPage:  200,
		},
		{
			Name:      "The Go Programming Language",
			Year:      2015,
			Author:    "Alan A. A. Donovan",
			Summary:   "An introduction to Go.",
			Publisher: "Addison-Wesley",
			PageCount: 380,
			ReadPage:  120,
			Reading:   true,
		},
		{
			Name:      "Concurrency in Go",
			Year:      2017,
			Author:    "Katherine Cox-Buday",
			Summary:   "Tools and techniques for Go developers.",
			Publisher: "O'Reilly Media",
			PageCount: 238,
		},
	}

	books := make([]Book, 0, len(inputs))
	for _, in := range inputs {
		b := Book{ID: ids.NewID(), InsertedAt: now, UpdatedAt: now}
		b.apply(in)
		books = append(books, b)
	}
	return books
}

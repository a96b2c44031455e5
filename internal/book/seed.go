package book

// SeedData returns the demonstration books the catalog starts with.
func SeedData() []Book {
	return []Book{
		{
			ID:     1,
			Title:  "The Great Gatsby",
			Author: "F. Scott Fitzgerald",
			ISBN:   "9780743273565",
			Year:   1925,
		},
		{
			ID:     2,
			Title:  "To Kill a Mockingbird",
			Author: "Harper Lee",
			ISBN:   "9780061120084",
			Year:   1960,
		},
		{
			ID:     3,
			Title:  "1984",
			Author: "George Orwell",
			ISBN:   "9780451524935",
			Year:   1949,
		},
	}
}

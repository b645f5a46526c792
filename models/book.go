package models

// Book is the bookstore resource payload, keyed by ISBN.
type Book struct {
	// ISBN uniquely identifies the book within the collection.
	ISBN string `json:"isbn"`

	// Title is the book title.
	Title string `json:"title"`

	// Authors lists the book's authors in credit order.
	Authors []string `json:"authors,omitempty"`

	// Pages is the page count, zero when unknown.
	Pages int `json:"pages,omitempty"`

	// Year is the publication year, zero when unknown.
	Year int `json:"year,omitempty"`
}

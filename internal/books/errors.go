package books

import "errors"

var (
	// ErrBookNotFound indicates no book is stored under the given ISBN.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookExists indicates a create collided with an existing ISBN.
	ErrBookExists = errors.New("book already exists")
	// ErrNoISBN indicates a create payload without an ISBN.
	ErrNoISBN = errors.New("book has no isbn")
)

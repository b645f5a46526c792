// Package books implements the bookstore business service: an in-memory
// CRUD collection of books exposed as an opaque routable unit.
//
// The service owns its internal path structure; the route composer only
// mounts it under the configured prefix. All payload encoding and decoding
// goes through the media codec attached to the request, so the service
// works identically under every serialization strategy.
package books

import (
	"sync"

	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/models"
)

// Service holds the book collection. Safe for concurrent use: the store is
// guarded by a read-write mutex since request handlers run on the listener's
// worker pool.
type Service struct {
	mu    sync.RWMutex
	books map[string]models.Book

	logger *logger.Logger
}

// NewService builds an empty book collection.
func NewService(logger *logger.Logger) *Service {
	logger.Info().Msg("book service created")
	return &Service{
		books:  make(map[string]models.Book),
		logger: logger,
	}
}

// List returns every book in the collection. Order is unspecified.
func (s *Service) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	return out
}

// Get returns the book with the given ISBN.
func (s *Service) Get(isbn string) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[isbn]
	return b, ok
}

// Create adds a new book. Returns ErrBookExists when the ISBN is taken and
// ErrNoISBN when the payload carries no ISBN.
func (s *Service) Create(b models.Book) error {
	if b.ISBN == "" {
		return ErrNoISBN
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[b.ISBN]; ok {
		return ErrBookExists
	}
	s.books[b.ISBN] = b
	return nil
}

// Update replaces the book stored under isbn. The payload's ISBN field is
// forced to the path value. Returns ErrBookNotFound when absent.
func (s *Service) Update(isbn string, b models.Book) error {
	b.ISBN = isbn

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return ErrBookNotFound
	}
	s.books[isbn] = b
	return nil
}

// Delete removes the book with the given ISBN.
// Returns ErrBookNotFound when absent.
func (s *Service) Delete(isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return ErrBookNotFound
	}
	delete(s.books, isbn)
	return nil
}

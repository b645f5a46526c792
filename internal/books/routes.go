package books

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/internal/media"
	"github.com/MKhiriev/go-bookstore/models"
)

// Routes returns the service's internal route structure. The composer mounts
// it as an opaque unit; paths here are relative to the mount prefix.
func (s *Service) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", s.list)
	router.Post("/", s.create)
	router.Get("/{isbn}", s.get)
	router.Put("/{isbn}", s.update)
	router.Delete("/{isbn}", s.delete)

	return router
}

func (s *Service) list(w http.ResponseWriter, r *http.Request) {
	s.writePayload(w, r, http.StatusOK, s.List())
}

func (s *Service) get(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	book, ok := s.Get(isbn)
	if !ok {
		http.Error(w, ErrBookNotFound.Error(), http.StatusNotFound)
		return
	}

	s.writePayload(w, r, http.StatusOK, book)
}

func (s *Service) create(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if !s.readPayload(w, r, &book) {
		return
	}

	if err := s.Create(book); err != nil {
		switch {
		case errors.Is(err, ErrNoISBN):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrBookExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	s.writePayload(w, r, http.StatusCreated, book)
}

func (s *Service) update(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	var book models.Book
	if !s.readPayload(w, r, &book) {
		return
	}

	if err := s.Update(isbn, book); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	book.ISBN = isbn
	s.writePayload(w, r, http.StatusOK, book)
}

func (s *Service) delete(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	if err := s.Delete(isbn); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readPayload decodes the request body through the attached media codec.
// A missing codec is a composition defect and answers 500 immediately
// instead of skipping content negotiation.
func (s *Service) readPayload(w http.ResponseWriter, r *http.Request, v any) bool {
	log := logger.FromRequest(r)

	codec, err := media.FromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Service.readPayload").Msg("media middleware not attached")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}

	if err := codec.Decode(r.Body, v); err != nil {
		log.Err(err).Str("func", "*Service.readPayload").Msg("invalid payload was passed")
		http.Error(w, "invalid payload was passed", http.StatusBadRequest)
		return false
	}

	return true
}

func (s *Service) writePayload(w http.ResponseWriter, r *http.Request, code int, v any) {
	log := logger.FromRequest(r)

	codec, err := media.FromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Service.writePayload").Msg("media middleware not attached")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", codec.ContentType())
	w.WriteHeader(code)
	if err := codec.Encode(w, v); err != nil {
		log.Err(err).Str("func", "*Service.writePayload").Msg("error encoding response")
	}
}

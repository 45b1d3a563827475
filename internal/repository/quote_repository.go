package repository

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

var ErrEmptyQuote = errors.New("quote text is empty")

type QuoteRepository struct {
	store *db.QuoteStore
}

func NewQuoteRepository(store *db.QuoteStore) *QuoteRepository {
	return &QuoteRepository{store: store}
}

// List seeds the reference set on first read of an empty table, then returns
// every quote. The check-then-insert is deliberately not transactional; a
// race between two concurrent first reads can duplicate nothing here because
// seed IDs are fixed and the insert is an upsert.
func (repo *QuoteRepository) List() ([]models.Quote, error) {
	if err := repo.ensureSeeded(); err != nil {
		return nil, err
	}
	return repo.store.List()
}

func (repo *QuoteRepository) Favorites() ([]models.Quote, error) {
	if err := repo.ensureSeeded(); err != nil {
		return nil, err
	}
	return repo.store.ListFavorites()
}

func (repo *QuoteRepository) RandomQuote() (models.Quote, error) {
	quotes, err := repo.List()
	if err != nil {
		return models.Quote{}, err
	}
	if len(quotes) == 0 {
		return models.Quote{}, errors.New("no quotes available")
	}
	return quotes[rand.Intn(len(quotes))], nil
}

// Add stores a user-created quote under a fresh UUID.
func (repo *QuoteRepository) Add(text string, author string, category string) (models.Quote, error) {
	if strings.TrimSpace(text) == "" {
		return models.Quote{}, ErrEmptyQuote
	}
	quote := models.Quote{
		ID:       uuid.NewString(),
		Text:     strings.TrimSpace(text),
		Author:   strings.TrimSpace(author),
		Category: strings.TrimSpace(category),
	}
	if err := repo.store.Upsert(quote); err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

func (repo *QuoteRepository) SetFavorite(quoteID string, favorite bool) error {
	return repo.store.SetFavorite(quoteID, favorite)
}

func (repo *QuoteRepository) ToggleFavorite(quoteID string) error {
	quote, err := repo.store.FindByID(quoteID)
	if err != nil {
		return err
	}
	return repo.store.SetFavorite(quoteID, !quote.Favorite)
}

func (repo *QuoteRepository) Delete(quoteID string) error {
	return repo.store.Delete(quoteID)
}

func (repo *QuoteRepository) ensureSeeded() error {
	count, err := repo.store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return repo.store.Upsert(models.DefaultQuotes()...)
}

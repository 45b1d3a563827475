package state

import (
	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

// QuoteState exposes the quote library. The live query's fetch goes through
// the repository, so the reference set is seeded on the first observed read.
type QuoteState struct {
	repo      *repository.QuoteRepository
	Quotes    *LiveQuery[[]models.Quote]
	Favorites *LiveQuery[[]models.Quote]
}

func NewQuoteState(bus *db.ChangeBus, repo *repository.QuoteRepository) *QuoteState {
	return &QuoteState{
		repo:      repo,
		Quotes:    NewLiveQuery(bus, repo.List, db.TableQuotes),
		Favorites: NewLiveQuery(bus, repo.Favorites, db.TableQuotes),
	}
}

func (s *QuoteState) Add(text string, author string, category string) <-chan error {
	return dispatch(func() error {
		_, err := s.repo.Add(text, author, category)
		return err
	})
}

func (s *QuoteState) ToggleFavorite(quoteID string) <-chan error {
	return dispatch(func() error {
		return s.repo.ToggleFavorite(quoteID)
	})
}

func (s *QuoteState) Delete(quoteID string) <-chan error {
	return dispatch(func() error {
		return s.repo.Delete(quoteID)
	})
}

func (s *QuoteState) Close() {
	s.Quotes.Close()
	s.Favorites.Close()
}

package state

import (
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
)

// HomeState serves the dashboard's one-shot fetches: a random quote, fun
// fact and tip. These are not live; the screen refreshes them explicitly.
type HomeState struct {
	quotes *repository.QuoteRepository
	facts  *repository.FunFactRepository
	tips   *repository.TipRepository
}

func NewHomeState(quotes *repository.QuoteRepository, facts *repository.FunFactRepository, tips *repository.TipRepository) *HomeState {
	return &HomeState{quotes: quotes, facts: facts, tips: tips}
}

func (s *HomeState) RandomQuote() (models.Quote, error) {
	return s.quotes.RandomQuote()
}

func (s *HomeState) RandomFact() (models.FunFact, error) {
	return s.facts.RandomFact()
}

func (s *HomeState) RandomTip() (models.MentalHealthTip, error) {
	return s.tips.RandomTip()
}

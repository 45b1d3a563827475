package repository

import (
	"errors"
	"math/rand"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

// FunFactRepository and TipRepository front the two static reference tables.
// The seed-if-empty check is not transactional: two concurrent first reads
// could race, which is accepted for static reference data.

type FunFactRepository struct {
	store *db.FunFactStore
}

func NewFunFactRepository(store *db.FunFactStore) *FunFactRepository {
	return &FunFactRepository{store: store}
}

func (repo *FunFactRepository) List() ([]models.FunFact, error) {
	if err := repo.ensureSeeded(); err != nil {
		return nil, err
	}
	return repo.store.List()
}

// RandomFact seeds the table when empty and returns one uniformly chosen row.
func (repo *FunFactRepository) RandomFact() (models.FunFact, error) {
	facts, err := repo.List()
	if err != nil {
		return models.FunFact{}, err
	}
	if len(facts) == 0 {
		return models.FunFact{}, errors.New("no fun facts available")
	}
	return facts[rand.Intn(len(facts))], nil
}

func (repo *FunFactRepository) ensureSeeded() error {
	count, err := repo.store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return repo.store.Upsert(models.DefaultFunFacts())
}

type TipRepository struct {
	store *db.TipStore
}

func NewTipRepository(store *db.TipStore) *TipRepository {
	return &TipRepository{store: store}
}

func (repo *TipRepository) List() ([]models.MentalHealthTip, error) {
	if err := repo.ensureSeeded(); err != nil {
		return nil, err
	}
	return repo.store.List()
}

// RandomTip seeds the table when empty and returns one uniformly chosen row.
func (repo *TipRepository) RandomTip() (models.MentalHealthTip, error) {
	tips, err := repo.List()
	if err != nil {
		return models.MentalHealthTip{}, err
	}
	if len(tips) == 0 {
		return models.MentalHealthTip{}, errors.New("no tips available")
	}
	return tips[rand.Intn(len(tips))], nil
}

func (repo *TipRepository) ensureSeeded() error {
	count, err := repo.store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return repo.store.Upsert(models.DefaultMentalHealthTips())
}

package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FunFactStore and TipStore back the two static reference tables. Writes only
// happen during first-run seeding.

type FunFactStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewFunFactStore(database *gorm.DB, bus *ChangeBus) *FunFactStore {
	return &FunFactStore{database: database, bus: bus}
}

func (store *FunFactStore) Count() (int64, error) {
	var count int64
	if err := store.database.Model(&models.FunFact{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (store *FunFactStore) List() ([]models.FunFact, error) {
	facts := make([]models.FunFact, 0)
	if err := store.database.Order("id ASC").Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

func (store *FunFactStore) Upsert(facts []models.FunFact) error {
	if len(facts) == 0 {
		return nil
	}
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(&facts).Error; err != nil {
		return err
	}
	store.bus.Publish(TableFunFacts)
	return nil
}

type TipStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewTipStore(database *gorm.DB, bus *ChangeBus) *TipStore {
	return &TipStore{database: database, bus: bus}
}

func (store *TipStore) Count() (int64, error) {
	var count int64
	if err := store.database.Model(&models.MentalHealthTip{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (store *TipStore) List() ([]models.MentalHealthTip, error) {
	tips := make([]models.MentalHealthTip, 0)
	if err := store.database.Order("id ASC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (store *TipStore) Upsert(tips []models.MentalHealthTip) error {
	if len(tips) == 0 {
		return nil
	}
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(&tips).Error; err != nil {
		return err
	}
	store.bus.Publish(TableTips)
	return nil
}

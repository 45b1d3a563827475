package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuoteStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewQuoteStore(database *gorm.DB, bus *ChangeBus) *QuoteStore {
	return &QuoteStore{database: database, bus: bus}
}

func (store *QuoteStore) Count() (int64, error) {
	var count int64
	if err := store.database.Model(&models.Quote{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (store *QuoteStore) List() ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	if err := store.database.Order("id ASC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (store *QuoteStore) ListFavorites() ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	if err := store.database.Where("favorite = ?", true).Order("id ASC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (store *QuoteStore) FindByID(quoteID string) (models.Quote, error) {
	var quote models.Quote
	if err := store.database.Where("id = ?", quoteID).First(&quote).Error; err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

// Upsert inserts the given quotes, replacing any row sharing a primary key.
func (store *QuoteStore) Upsert(quotes ...models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(&quotes).Error; err != nil {
		return err
	}
	store.bus.Publish(TableQuotes)
	return nil
}

func (store *QuoteStore) SetFavorite(quoteID string, favorite bool) error {
	if err := store.database.Model(&models.Quote{}).Where("id = ?", quoteID).Update("favorite", favorite).Error; err != nil {
		return err
	}
	store.bus.Publish(TableQuotes)
	return nil
}

func (store *QuoteStore) Delete(quoteID string) error {
	if err := store.database.Where("id = ?", quoteID).Delete(&models.Quote{}).Error; err != nil {
		return err
	}
	store.bus.Publish(TableQuotes)
	return nil
}

package db

import (
	"github.com/willowmind/willow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileStore struct {
	database *gorm.DB
	bus      *ChangeBus
}

func NewProfileStore(database *gorm.DB, bus *ChangeBus) *ProfileStore {
	return &ProfileStore{database: database, bus: bus}
}

// Load returns the singleton profile row. The boolean reports whether a row
// has been saved yet.
func (store *ProfileStore) Load() (models.UserProfile, bool, error) {
	profile := models.UserProfile{}
	result := store.database.Where("id = ?", models.ProfileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.UserProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserProfile{}, false, nil
	}
	return profile, true, nil
}

// Save upserts the singleton row; the primary key is forced to the fixed
// profile ID so there is never more than one row.
func (store *ProfileStore) Save(profile *models.UserProfile) error {
	profile.ID = models.ProfileID
	if err := store.database.Clauses(clause.OnConflict{UpdateAll: true}).Create(profile).Error; err != nil {
		return err
	}
	store.bus.Publish(TableUserProfiles)
	return nil
}

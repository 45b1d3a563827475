package repository

import (
	"io"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
)

type ProfileRepository struct {
	store *db.ProfileStore
}

func NewProfileRepository(store *db.ProfileStore) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Load returns the saved profile, or a zero-valued one carrying the fixed ID
// when nothing has been saved yet.
func (repo *ProfileRepository) Load() (models.UserProfile, error) {
	profile, found, err := repo.store.Load()
	if err != nil {
		return models.UserProfile{}, err
	}
	if !found {
		return models.UserProfile{ID: models.ProfileID}, nil
	}
	return profile, nil
}

func (repo *ProfileRepository) Save(profile models.UserProfile) error {
	return repo.store.Save(&profile)
}

func (repo *ProfileRepository) ExportCSV(writer io.Writer) error {
	profile, err := repo.Load()
	if err != nil {
		return err
	}
	return WriteProfileCSV(writer, profile)
}

// ImportCSV replaces the stored profile with the parsed file. A header
// mismatch or malformed record is a silent no-op: the boolean is false and
// the stored profile stays untouched.
func (repo *ProfileRepository) ImportCSV(reader io.Reader) (models.UserProfile, bool, error) {
	profile, ok, err := ReadProfileCSV(reader)
	if err != nil || !ok {
		return models.UserProfile{}, false, err
	}
	if err := repo.store.Save(&profile); err != nil {
		return models.UserProfile{}, false, err
	}
	return profile, true, nil
}

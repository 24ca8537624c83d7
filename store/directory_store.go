package store

import (
	"errors"
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/model"
)

// DirectoryStore backs the public API surface.
type DirectoryStore struct {
	db *gorm.DB
}

func NewDirectoryStore(db *gorm.DB) *DirectoryStore {
	return &DirectoryStore{db: db}
}

func (s *DirectoryStore) All() ([]model.DirectoryCafe, error) {
	cafes := make([]model.DirectoryCafe, 0)
	if err := s.db.Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (s *DirectoryStore) ByID(id uint) (*model.DirectoryCafe, error) {
	var cafe model.DirectoryCafe
	if err := s.db.First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

// ByLocation returns every cafe at the exact location. No match is an
// empty slice with a nil error; the caller decides that is a not-found.
func (s *DirectoryStore) ByLocation(location string) ([]model.DirectoryCafe, error) {
	cafes := make([]model.DirectoryCafe, 0)
	if err := s.db.Where("location = ?", location).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (s *DirectoryStore) Create(cafe *model.DirectoryCafe) error {
	if err := s.db.Create(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// UpdatePrice changes only the coffee_price column. Unknown ids return
// gorm.ErrRecordNotFound without writing anything.
func (s *DirectoryStore) UpdatePrice(id uint, newPrice string) error {
	result := s.db.Model(&model.DirectoryCafe{}).Where("id = ?", id).Update("coffee_price", newPrice)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *DirectoryStore) Delete(id uint) error {
	result := s.db.Delete(&model.DirectoryCafe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Random picks uniformly among the ids that currently exist, so rows
// deleted earlier never skew or break the draw.
func (s *DirectoryStore) Random() (*model.DirectoryCafe, error) {
	var ids []uint
	if err := s.db.Model(&model.DirectoryCafe{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.ByID(ids[rand.IntN(len(ids))])
}

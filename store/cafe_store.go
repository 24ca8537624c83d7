package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/model"
)

// CafeStore backs the session surface. Every write stamps the
// modification time and the acting user.
type CafeStore struct {
	db *gorm.DB
}

func NewCafeStore(db *gorm.DB) *CafeStore {
	return &CafeStore{db: db}
}

func (s *CafeStore) All() ([]model.Cafe, error) {
	cafes := make([]model.Cafe, 0)
	if err := s.db.Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (s *CafeStore) ByID(id uint) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := s.db.First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (s *CafeStore) Create(cafe *model.Cafe, userID uint) error {
	now := time.Now()
	cafe.CreationTime = now
	cafe.ModificationTime = now
	cafe.UpdatedByID = &userID
	if err := s.db.Create(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *CafeStore) Update(cafe *model.Cafe, userID uint) error {
	cafe.ModificationTime = time.Now()
	cafe.UpdatedByID = &userID
	if err := s.db.Save(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *CafeStore) Delete(id uint) error {
	result := s.db.Delete(&model.Cafe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

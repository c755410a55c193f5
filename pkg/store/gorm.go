package store

import (
	"time"

	"gorm.io/gorm"

	"krishi/entities"
)

// Gorm persists annotations in sqlite. Set writes exactly one key, so
// concurrent edits to different keys never clobber each other.
type Gorm struct{ db *gorm.DB }

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{db} }

func (s *Gorm) Get(key string) (entities.EventAnnotation, bool, error) {
	var a entities.EventAnnotation
	err := s.db.First(&a, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return entities.EventAnnotation{Key: key}, false, nil
	}
	if err != nil {
		return entities.EventAnnotation{}, false, err
	}
	return a, true, nil
}

func (s *Gorm) Set(a entities.EventAnnotation) error {
	a.UpdatedAt = time.Now()
	return s.db.Save(&a).Error
}

func (s *Gorm) All() (map[string]entities.EventAnnotation, error) {
	var list []entities.EventAnnotation
	if err := s.db.Find(&list).Error; err != nil {
		return nil, err
	}
	out := make(map[string]entities.EventAnnotation, len(list))
	for _, a := range list {
		out[a.Key] = a
	}
	return out, nil
}

package repositoryImp

import (
	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) Create(p *entities.FarmerProfile) error { return r.db.Create(p).Error }

func (r *profileRepo) Update(p *entities.FarmerProfile) error { return r.db.Save(p).Error }

func (r *profileRepo) FindByID(id string) (*entities.FarmerProfile, error) {
	var out entities.FarmerProfile
	if err := r.db.First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

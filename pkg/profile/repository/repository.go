package repository

import "krishi/entities"

type ProfileRepository interface {
	Create(p *entities.FarmerProfile) error
	Update(p *entities.FarmerProfile) error
	FindByID(id string) (*entities.FarmerProfile, error)
}

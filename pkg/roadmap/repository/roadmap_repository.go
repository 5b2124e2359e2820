package repository

import "elevare/entities"

type RoadmapRepository interface {
	Create(r *entities.Roadmap) error
	// Update is used solely to complete or fail a pending streaming record.
	Update(r *entities.Roadmap) error
	ListByUser(userID string) ([]entities.Roadmap, error) // newest first
	FindByID(id uint) (*entities.Roadmap, error)
	// Delete reports gorm.ErrRecordNotFound when nothing was deleted, so a
	// second delete of the same id is a 404, not a failure.
	Delete(id uint) error
}

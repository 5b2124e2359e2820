package repositoryImp

import (
	"elevare/entities"
	"elevare/pkg/roadmap/repository"

	"gorm.io/gorm"
)

type roadmapRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RoadmapRepository { return &roadmapRepo{db} }

func (r *roadmapRepo) Create(m *entities.Roadmap) error { return r.db.Create(m).Error }

func (r *roadmapRepo) Update(m *entities.Roadmap) error { return r.db.Save(m).Error }

func (r *roadmapRepo) ListByUser(userID string) ([]entities.Roadmap, error) {
	var out []entities.Roadmap
	return out, r.db.Where("user_id = ?", userID).Order("created_at DESC, roadmap_id DESC").Find(&out).Error
}

func (r *roadmapRepo) FindByID(id uint) (*entities.Roadmap, error) {
	var m entities.Roadmap
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *roadmapRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Roadmap{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

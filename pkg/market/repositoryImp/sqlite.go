package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/market/repository"
)

type snapRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SnapshotRepository { return &snapRepo{db} }

// ReplaceSource swaps the cached rows for one source atomically, so a
// reader never sees a half-written refresh.
func (r *snapRepo) ReplaceSource(source string, snaps []entities.PriceSnapshot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source = ?", source).Delete(&entities.PriceSnapshot{}).Error; err != nil {
			return err
		}
		if len(snaps) == 0 {
			return nil
		}
		return tx.CreateInBatches(&snaps, 500).Error
	})
}

func (r *snapRepo) ListBySource(source string) ([]entities.PriceSnapshot, error) {
	var out []entities.PriceSnapshot
	if err := r.db.Where("source = ?", source).Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapRepo) LatestFetch(source string) (time.Time, error) {
	var snap entities.PriceSnapshot
	err := r.db.Where("source = ?", source).Order("fetched_at desc").First(&snap).Error
	if err == gorm.ErrRecordNotFound {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return snap.FetchedAt, nil
}

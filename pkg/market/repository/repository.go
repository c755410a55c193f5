package repository

import (
	"time"

	"krishi/entities"
)

type SnapshotRepository interface {
	ReplaceSource(source string, snaps []entities.PriceSnapshot) error
	ListBySource(source string) ([]entities.PriceSnapshot, error)
	LatestFetch(source string) (time.Time, error)
}

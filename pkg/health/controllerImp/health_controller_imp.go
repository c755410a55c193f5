package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishi/pkg/market/repository"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	snaps repository.SnapshotRepository
	src   string
}

func NewHealthCtrl(db *gorm.DB, snaps repository.SnapshotRepository, primarySource string) *HealthCtrl {
	return &HealthCtrl{db: db, snaps: snaps, src: primarySource}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	// price cache age is informational and never fails the check: the
	// service still answers from stale data.
	cacheAge := ""
	if h.snaps != nil {
		if at, err := h.snaps.LatestFetch(h.src); err == nil && !at.IsZero() {
			cacheAge = time.Since(at).Round(time.Second).String()
		}
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"price_cache_age": cacheAge,
		"time":            time.Now().Format(time.RFC3339),
	})
}

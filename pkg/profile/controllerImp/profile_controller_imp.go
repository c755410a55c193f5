package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"krishi/entities"
	"krishi/pkg/calendar"
	"krishi/pkg/profile/repository"
)

type ProfileCtrl struct {
	repo    repository.ProfileRepository
	catalog map[entities.Category][]entities.CalendarEvent
}

func New(repo repository.ProfileRepository, catalog map[entities.Category][]entities.CalendarEvent) *ProfileCtrl {
	return &ProfileCtrl{repo: repo, catalog: catalog}
}

func (h *ProfileCtrl) Create(c echo.Context) error {
	var p entities.FarmerProfile
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := h.repo.Create(&p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Update(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}
	var patch entities.FarmerProfile
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	patch.ID = p.ID
	patch.CreatedAt = p.CreatedAt
	if err := h.repo.Update(&patch); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, patch)
}

// Dashboard serves GET /api/auth/dashboard for the bearer-authenticated
// farmer: their profile, calendar stats and the scheme deadlines.
func (h *ProfileCtrl) Dashboard(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	p, err := h.repo.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
	}

	personalized := calendar.Generate(h.catalog, *p)
	stats := map[string]int{}
	total := 0
	for cat, events := range personalized {
		stats[string(cat)] = len(events)
		total += len(events)
	}
	stats["total"] = total

	return c.JSON(http.StatusOK, map[string]any{
		"profile":             p,
		"stats":               stats,
		"recommended_schemes": personalized[entities.CategoryScheme],
	})
}

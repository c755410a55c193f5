package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"krishi/entities"
	"krishi/pkg/calendar"
	profileRepo "krishi/pkg/profile/repository"
	"krishi/pkg/store"
)

type CalendarCtrl struct {
	catalog  map[entities.Category][]entities.CalendarEvent
	store    store.AnnotationStore
	profiles profileRepo.ProfileRepository
}

func New(catalog map[entities.Category][]entities.CalendarEvent, st store.AnnotationStore, profiles profileRepo.ProfileRepository) *CalendarCtrl {
	return &CalendarCtrl{catalog: catalog, store: st, profiles: profiles}
}

// engineFor builds the query engine, personalized when a profile_id is
// given and resolves. A profile that does not resolve falls back to the
// generic calendar rather than failing the request.
func (h *CalendarCtrl) engineFor(c echo.Context) (*calendar.Engine, *entities.FarmerProfile) {
	pid := c.QueryParam("profile_id")
	if pid == "" || h.profiles == nil {
		return calendar.NewEngine(h.catalog, h.store), nil
	}
	p, err := h.profiles.FindByID(pid)
	if err != nil {
		return calendar.NewEngine(h.catalog, h.store), nil
	}
	return calendar.NewEngine(calendar.Generate(h.catalog, *p), h.store), p
}

// Events handles GET /calendar/events?date=&category=&profile_id=.
// Date and category narrow the list; both empty returns everything.
func (h *CalendarCtrl) Events(c echo.Context) error {
	eng, _ := h.engineFor(c)

	var events []entities.CalendarEvent
	switch {
	case c.QueryParam("date") != "":
		events = eng.EventsOn(c.QueryParam("date"))
	case c.QueryParam("category") != "":
		events = eng.EventsMatching(entities.Category(c.QueryParam("category")))
	default:
		events = eng.All()
	}

	annotations, err := eng.Annotations()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	type annotated struct {
		entities.CalendarEvent
		Key        string                    `json:"key"`
		Annotation *entities.EventAnnotation `json:"annotation,omitempty"`
	}
	out := make([]annotated, 0, len(events))
	for _, ev := range events {
		a := annotated{CalendarEvent: ev, Key: calendar.KeyFor(ev)}
		if ann, ok := annotations[a.Key]; ok {
			a.Annotation = &ann
		}
		out = append(out, a)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "count": len(out), "events": out})
}

// Note handles POST /calendar/events/:key/note with body {"note": "..."}.
func (h *CalendarCtrl) Note(c echo.Context) error {
	eng, _ := h.engineFor(c)
	ev, ok := eng.FindByKey(c.Param("key"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown event"})
	}
	var body struct {
		Note string `json:"note"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	a, err := eng.SetAnnotation(ev, calendar.AnnotationPatch{Note: &body.Note})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// Reminder handles POST /calendar/events/:key/reminder (toggle).
func (h *CalendarCtrl) Reminder(c echo.Context) error {
	return h.toggle(c, func(eng *calendar.Engine, ev entities.CalendarEvent) (bool, error) {
		return eng.ToggleReminder(ev)
	})
}

// Highlight handles POST /calendar/events/:key/highlight (toggle).
func (h *CalendarCtrl) Highlight(c echo.Context) error {
	return h.toggle(c, func(eng *calendar.Engine, ev entities.CalendarEvent) (bool, error) {
		return eng.ToggleHighlight(ev)
	})
}

func (h *CalendarCtrl) toggle(c echo.Context, f func(*calendar.Engine, entities.CalendarEvent) (bool, error)) error {
	eng, _ := h.engineFor(c)
	ev, ok := eng.FindByKey(c.Param("key"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown event"})
	}
	on, err := f(eng, ev)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"key": calendar.KeyFor(ev), "on": on})
}

// Export handles GET /calendar/export?format=csv|ics|json|xlsx.
func (h *CalendarCtrl) Export(c echo.Context) error {
	eng, profile := h.engineFor(c)
	events := eng.All()
	stamp := time.Now().Format("2006-01-02")

	switch c.QueryParam("format") {
	case "", "csv":
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="farming-calendar-%s.csv"`, stamp))
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().WriteHeader(http.StatusOK)
		return calendar.ExportCSV(c.Response(), events)
	case "ics":
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="farming-calendar-%s.ics"`, stamp))
		c.Response().Header().Set(echo.HeaderContentType, "text/calendar")
		c.Response().WriteHeader(http.StatusOK)
		return calendar.ExportICS(c.Response(), events)
	case "json":
		annotations, err := eng.Annotations()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c.Response().WriteHeader(http.StatusOK)
		return calendar.ExportJSON(c.Response(), profile, events, annotations)
	case "xlsx":
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="farming-calendar-%s.xlsx"`, stamp))
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return calendar.ExportXLSX(c.Response(), events)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown format"})
	}
}

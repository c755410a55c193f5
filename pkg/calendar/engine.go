package calendar

import (
	"strings"

	"krishi/entities"
	"krishi/pkg/store"
)

// Engine answers date and category queries over a materialized event list
// and manages per-event annotations against an injected key-value store.
type Engine struct {
	events []entities.CalendarEvent
	store  store.AnnotationStore
}

func NewEngine(categories map[entities.Category][]entities.CalendarEvent, st store.AnnotationStore) *Engine {
	var events []entities.CalendarEvent
	for _, cat := range entities.Categories {
		events = append(events, categories[cat]...)
	}
	return &Engine{events: events, store: st}
}

func (e *Engine) All() []entities.CalendarEvent {
	return append([]entities.CalendarEvent(nil), e.events...)
}

// EventsOn matches by exact calendar date. Dates are compared as plain
// YYYY-MM-DD strings; parsing into an instant would shift events by a day
// depending on server timezone. A season running over the date via its
// EndDate does not match.
func (e *Engine) EventsOn(date string) []entities.CalendarEvent {
	out := []entities.CalendarEvent{}
	for _, ev := range e.events {
		d := ev.Date
		if i := strings.IndexByte(d, 'T'); i >= 0 { // tolerate datetime forms
			d = d[:i]
		}
		if d == date {
			out = append(out, ev)
		}
	}
	return out
}

func (e *Engine) EventsMatching(cat entities.Category) []entities.CalendarEvent {
	out := []entities.CalendarEvent{}
	for _, ev := range e.events {
		if ev.Category == cat {
			out = append(out, ev)
		}
	}
	return out
}

// KeyFor derives the annotation identity of an event. Deliberately just
// date+name: annotations survive calendar regeneration, and an activity
// that shows up in both a generic and a personalized list shares one note.
func KeyFor(ev entities.CalendarEvent) string {
	return ev.Date + "-" + ev.Name
}

// AnnotationFor returns the stored annotation, or an empty one keyed and
// ready to patch.
func (e *Engine) AnnotationFor(ev entities.CalendarEvent) (entities.EventAnnotation, error) {
	a, ok, err := e.store.Get(KeyFor(ev))
	if err != nil {
		return entities.EventAnnotation{}, err
	}
	if !ok {
		a = entities.EventAnnotation{Key: KeyFor(ev)}
	}
	return a, nil
}

// AnnotationPatch updates only the fields it carries.
type AnnotationPatch struct {
	Note        *string
	ReminderSet *bool
	Highlighted *bool
}

// SetAnnotation read-modify-writes a single key; other keys in the store
// are untouched.
func (e *Engine) SetAnnotation(ev entities.CalendarEvent, p AnnotationPatch) (entities.EventAnnotation, error) {
	a, err := e.AnnotationFor(ev)
	if err != nil {
		return entities.EventAnnotation{}, err
	}
	if p.Note != nil {
		a.Note = *p.Note
	}
	if p.ReminderSet != nil {
		a.ReminderSet = *p.ReminderSet
	}
	if p.Highlighted != nil {
		a.Highlighted = *p.Highlighted
	}
	if err := e.store.Set(a); err != nil {
		return entities.EventAnnotation{}, err
	}
	return a, nil
}

// ToggleReminder flips the reminder flag, returning the new state.
func (e *Engine) ToggleReminder(ev entities.CalendarEvent) (bool, error) {
	a, err := e.AnnotationFor(ev)
	if err != nil {
		return false, err
	}
	v := !a.ReminderSet
	_, err = e.SetAnnotation(ev, AnnotationPatch{ReminderSet: &v})
	return v, err
}

// ToggleHighlight flips the highlight flag, returning the new state.
func (e *Engine) ToggleHighlight(ev entities.CalendarEvent) (bool, error) {
	a, err := e.AnnotationFor(ev)
	if err != nil {
		return false, err
	}
	v := !a.Highlighted
	_, err = e.SetAnnotation(ev, AnnotationPatch{Highlighted: &v})
	return v, err
}

// Annotations returns the whole store view for exports.
func (e *Engine) Annotations() (map[string]entities.EventAnnotation, error) {
	return e.store.All()
}

// FindByKey resolves an event from its annotation key, for the HTTP layer
// where only the key travels.
func (e *Engine) FindByKey(key string) (entities.CalendarEvent, bool) {
	for _, ev := range e.events {
		if KeyFor(ev) == key {
			return ev, true
		}
	}
	return entities.CalendarEvent{}, false
}

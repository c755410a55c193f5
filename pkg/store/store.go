// Package store holds the key-value persistence behind calendar
// annotations. The engine takes the interface, not a concrete store, so
// tests run against the in-memory one.
package store

import "krishi/entities"

type AnnotationStore interface {
	Get(key string) (entities.EventAnnotation, bool, error)
	Set(a entities.EventAnnotation) error
	All() (map[string]entities.EventAnnotation, error)
}

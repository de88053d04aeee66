package season

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPosition   = errors.New("invalid position")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrEmptyName         = errors.New("empty name")
)

type EntityKind string

const (
	KindDriver EntityKind = "driver"
	KindRace   EntityKind = "race"
	KindTeam   EntityKind = "team"
)

type UnknownEntityError struct {
	Kind EntityKind
	Name string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func (e *UnknownEntityError) Is(target error) bool {
	return target == ErrUnknownEntity
}

type alreadyRegisteredError struct {
	kind EntityKind
	name string
}

func (e *alreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.kind, e.name)
}

func (e *alreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

func unknown(kind EntityKind, name string) error {
	return &UnknownEntityError{Kind: kind, Name: name}
}

package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrAddressRequired      = errors.New("city is required before searching police stations manually")
	ErrConsentRequired      = errors.New("broadcast consent decision is required before submission")
	ErrStationRequired      = errors.New("a police station must be selected when auto-assign is off")
	ErrPhotoRequired        = errors.New("most recent photo is required before submission")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrDraftNotFound        = errors.New("draft not found")
)

// ValidationError - незаполненные или неверные поля шага
type ValidationError struct {
	Step   string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed for step %s: %s", e.Step, strings.Join(keys, ", "))
}

// PermissionError - пользователь запретил доступ к геолокации
type PermissionError struct {
	Permission string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission %q denied", e.Permission)
}

// NetworkError - временный сбой при обращении к бэкенду
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerRejection - корректный ответ сервера с отказом
type ServerRejection struct {
	StatusCode int
	Message    string
}

func (e *ServerRejection) Error() string {
	return fmt.Sprintf("server rejected request (status %d): %s", e.StatusCode, e.Message)
}

// PersistenceError - сбой сохранения или чтения черновика
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("draft %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

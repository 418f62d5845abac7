package repository

import "errors"

var (
	ErrHabitNotFound   = errors.New("habit not found")
	ErrProfileNotFound = errors.New("profile not found")
)

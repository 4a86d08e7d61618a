package models

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	ErrAlreadySwiped = errors.New("resume already swiped by this recruiter")
)

package apperr

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrNotRecipe = errors.New("not a recipe file")
)

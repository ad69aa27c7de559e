package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee ID already exists")
	ErrEmailExists        = errors.New("email already registered")
)

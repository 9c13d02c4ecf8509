// backend/models/errors.go
package models

import "errors"

// Falhas de autenticação. São devolvidas tal e qual ao chamador, nunca
// repetidas automaticamente nem recuperadas em silêncio.
var (
	ErrEmailNotFound         = errors.New("EmailNotFound")
	ErrPasswordNotConfigured = errors.New("PasswordNotConfigured")
	ErrWrongPassword         = errors.New("WrongPassword")
	ErrSupplierInactive      = errors.New("SupplierInactive")
	ErrSupplierWrongPassword = errors.New("SupplierWrongPassword")
)

// Erros do organograma.
var (
	ErrPersonNotFound        = errors.New("person not found")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrSubdepartmentNotFound = errors.New("subdepartment not found")
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
//
// Lookups that match no row return sql.ErrNoRows; callers translate it.
package repository

import "errors"

// ErrEmailTaken is returned by Create and Update when the store's unique
// email constraint rejects the row.
var ErrEmailTaken = errors.New("email already taken")

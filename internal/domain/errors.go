package domain

import "errors"

// Domain error taxonomy (spec.md §7). These are kinds, not wrapped types;
// callers compare with errors.Is against the store/evaluator boundary.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("customer not found")
	ErrValidation       = errors.New("validation failure")
	ErrTemplateMiss     = errors.New("no template registered for product")
)

// Window is the default analysis window in days (spec.md §3).
const Window = 90

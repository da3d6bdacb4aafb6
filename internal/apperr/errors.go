package apperr

import "fmt"

// ValidationError rejects a malformed search intent before anything is compiled.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ExecutionError marks a failure of the search engine call. The cause is kept as is.
type ExecutionError struct {
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func NewExecution(op string, err error) *ExecutionError {
	return &ExecutionError{Op: op, Err: err}
}

// CatalogLoadError means the facet catalog could not be built. There is no partial catalog.
type CatalogLoadError struct {
	Facet string
	Err   error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load %s facet catalog: %v", e.Facet, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

func NewCatalogLoad(facet string, err error) *CatalogLoadError {
	return &CatalogLoadError{Facet: facet, Err: err}
}

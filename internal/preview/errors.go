// Package preview builds social preview images for blog posts: a layout
// tree per excerpt, a flexbox-style layout pass, and canvas drawing to
// PNG (and optionally SVG).
package preview

import (
	"errors"
	"fmt"
)

// ErrMalformedExcerpt marks an excerpt that cannot produce an image,
// such as one without a title. Such items are skipped, not failed.
var ErrMalformedExcerpt = errors.New("malformed excerpt")

// RenderError represents a failure drawing or encoding one image.
type RenderError struct {
	Slug    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("preview %s: %s: %v", e.Slug, e.Message, e.Cause)
	}
	return fmt.Sprintf("preview %s: %s", e.Slug, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

package rendering

import (
	"errors"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/variant"
)

// ErrNilCV is returned when a renderer is given no content.
var ErrNilCV = errors.New("no CV to render")

// Input is the render input of one variant.
type Input struct {
	CV      *types.CV
	Privacy variant.Privacy
}

// InputFrom builds the render input from a resolved variant.
func InputFrom(r *variant.Resolved) Input {
	return Input{CV: r.CV, Privacy: r.Privacy}
}

// Private reports whether the phone number belongs in the output.
func (in Input) Private() bool {
	return in.Privacy == variant.Private
}

// Renderer produces a complete document from a render input. Implementations
// must not modify in.CV and must not write anything to disk.
type Renderer interface {
	Render(in Input) ([]byte, error)
	Extension() string
}

// TextRenderer is implemented by renderers whose output is not plain text.
// RenderText returns the reader-visible text of the same document.
type TextRenderer interface {
	RenderText(in Input) (string, error)
}

// ContactKind identifies an item of the contact line.
type ContactKind int

const (
	ContactLocation ContactKind = iota
	ContactPhone
	ContactEmail
)

// ContactItem is one entry of the contact line.
type ContactItem struct {
	Kind  ContactKind
	Value string
}

// ContactItems returns the contact line items in display order: location,
// phone (private only) and email. Empty items are left out.
func ContactItems(in Input) []ContactItem {
	c := in.CV.Contact
	items := make([]ContactItem, 0, 3)
	if c.Location != "" {
		items = append(items, ContactItem{Kind: ContactLocation, Value: c.Location})
	}
	if in.Private() && c.Phone != "" {
		items = append(items, ContactItem{Kind: ContactPhone, Value: c.Phone})
	}
	if c.Email != "" {
		items = append(items, ContactItem{Kind: ContactEmail, Value: c.Email})
	}
	return items
}

// ContactParts is ContactItems as plain text.
func ContactParts(in Input) []string {
	items := ContactItems(in)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Value)
	}
	return parts
}

// Package variant maps a (length, privacy) request onto a dataset, a layout
// and output filenames, and prepares the render input for one privacy level.
package variant

import (
	"errors"
	"fmt"

	"github.com/jonathan/cv-builder/internal/types"
)

// Length selects the dataset and layout.
type Length string

// Length values.
const (
	LengthFull    Length = "full"
	LengthConcise Length = "concise"
	LengthOnePage Length = "onepage"
)

// Privacy selects whether the phone number is shown.
type Privacy string

// Privacy values.
const (
	Public  Privacy = "public"
	Private Privacy = "private"
)

// Layout is the document layout a renderer applies.
type Layout string

// Layout values.
const (
	LayoutFull    Layout = "full"
	LayoutCompact Layout = "compact"
)

// Backend identifies a document output format.
type Backend string

// Backend values.
const (
	BackendLaTeX Backend = "latex"
	BackendDOCX  Backend = "docx"
)

// Sentinel errors returned by Resolve and Select.
var (
	ErrUnknownLength  = errors.New("unknown length")
	ErrUnknownPrivacy = errors.New("unknown privacy")
	ErrUnknownBackend = errors.New("unknown backend")
	ErrPhoneRequired  = errors.New("phone number required for the private variant")
)

// Names is the public/private output filename pair of one length and backend.
type Names struct {
	Public  string
	Private string
}

// For returns the filename for the given privacy level.
func (n Names) For(p Privacy) string {
	if p == Private {
		return n.Private
	}
	return n.Public
}

// Spec describes the inputs and outputs of one length.
type Spec struct {
	Length   Length
	DataFile string
	Layout   Layout
	names    map[Backend]Names
}

// Names returns the filename pair for backend.
func (s Spec) Names(backend Backend) (Names, error) {
	n, ok := s.names[backend]
	if !ok {
		return Names{}, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	return n, nil
}

var specs = map[Length]Spec{
	LengthFull: {
		Length:   LengthFull,
		DataFile: "cv_data.yml",
		Layout:   LayoutFull,
		names: map[Backend]Names{
			BackendLaTeX: {Public: "cv-clean.tex", Private: "cv-clean-phone.tex"},
			BackendDOCX:  {Public: "cv.docx", Private: "cv-phone.docx"},
		},
	},
	LengthConcise: {
		Length:   LengthConcise,
		DataFile: "cv_data_concise.yml",
		Layout:   LayoutFull,
		names: map[Backend]Names{
			BackendLaTeX: {Public: "cv-concise.tex", Private: "cv-concise-phone.tex"},
			BackendDOCX:  {Public: "cv-concise.docx", Private: "cv-concise-phone.docx"},
		},
	},
	LengthOnePage: {
		Length:   LengthOnePage,
		DataFile: "cv_data_onepage.yml",
		Layout:   LayoutCompact,
		names: map[Backend]Names{
			BackendLaTeX: {Public: "cv-onepage.tex", Private: "cv-onepage-phone.tex"},
			BackendDOCX:  {Public: "cv-onepage.docx", Private: "cv-onepage-phone.docx"},
		},
	},
}

// Lengths returns every supported length in a stable order.
func Lengths() []Length {
	return []Length{LengthFull, LengthConcise, LengthOnePage}
}

// Privacies returns both privacy levels, public first.
func Privacies() []Privacy {
	return []Privacy{Public, Private}
}

// ParseLength validates a length flag value.
func ParseLength(s string) (Length, error) {
	l := Length(s)
	if _, ok := specs[l]; !ok {
		return "", fmt.Errorf("%w: %q (expected full, concise or onepage)", ErrUnknownLength, s)
	}
	return l, nil
}

// Resolve returns the dataset, layout and file names of a length.
func Resolve(length Length) (Spec, error) {
	s, ok := specs[length]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownLength, length)
	}
	return s, nil
}

// Request is one variant to render.
type Request struct {
	Length  Length
	Privacy Privacy
	Backend Backend
}

// Resolved is the render input of one variant. CV is a private copy the
// caller may hand to a renderer.
type Resolved struct {
	CV          *types.CV
	Privacy     Privacy
	Layout      Layout
	Filename    string
	PublicName  string
	PrivateName string
}

// Select prepares the render input for req. The loaded cv is never modified:
// the phone is set on, or cleared from, a deep copy.
func Select(cv *types.CV, req Request, phone string) (*Resolved, error) {
	spec, err := Resolve(req.Length)
	if err != nil {
		return nil, err
	}
	if req.Privacy != Public && req.Privacy != Private {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrivacy, req.Privacy)
	}
	backend := req.Backend
	if backend == "" {
		backend = BackendLaTeX
	}
	names, err := spec.Names(backend)
	if err != nil {
		return nil, err
	}

	out := cv.Clone()
	if out == nil {
		out = &types.CV{}
	}
	switch req.Privacy {
	case Private:
		if phone == "" {
			return nil, ErrPhoneRequired
		}
		out.Contact.Phone = phone
	default:
		out.Contact.Phone = ""
	}

	return &Resolved{
		CV:          out,
		Privacy:     req.Privacy,
		Layout:      spec.Layout,
		Filename:    names.For(req.Privacy),
		PublicName:  names.Public,
		PrivateName: names.Private,
	}, nil
}

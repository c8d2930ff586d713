package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/variant"
)

func contactCV() *types.CV {
	return &types.CV{Contact: types.ContactInfo{
		Location: "Berlin",
		Email:    "ada@example.com",
		Phone:    "+49 30 000",
	}}
}

func TestContactParts_Private(t *testing.T) {
	parts := ContactParts(Input{CV: contactCV(), Privacy: variant.Private})
	assert.Equal(t, []string{"Berlin", "+49 30 000", "ada@example.com"}, parts)
}

func TestContactParts_PublicNeverShowsPhone(t *testing.T) {
	parts := ContactParts(Input{CV: contactCV(), Privacy: variant.Public})
	assert.Equal(t, []string{"Berlin", "ada@example.com"}, parts)
}

func TestContactParts_SkipsEmpty(t *testing.T) {
	cv := &types.CV{Contact: types.ContactInfo{Email: "a@b.c"}}
	assert.Equal(t, []string{"a@b.c"}, ContactParts(Input{CV: cv, Privacy: variant.Private}))
}

func TestContactItems_KindsFollowFields(t *testing.T) {
	cv := contactCV()
	cv.Contact.Location = cv.Contact.Email

	items := ContactItems(Input{CV: cv, Privacy: variant.Private})
	assert.Equal(t, []ContactItem{
		{Kind: ContactLocation, Value: "ada@example.com"},
		{Kind: ContactPhone, Value: "+49 30 000"},
		{Kind: ContactEmail, Value: "ada@example.com"},
	}, items)
}

func TestInputFrom(t *testing.T) {
	cv := contactCV()
	in := InputFrom(&variant.Resolved{CV: cv, Privacy: variant.Private})
	assert.Same(t, cv, in.CV)
	assert.True(t, in.Private())
}

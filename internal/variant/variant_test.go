package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func sampleCV() *types.CV {
	return &types.CV{
		Contact: types.ContactInfo{Name: "Ada", Email: "ada@example.com"},
		Experience: []types.Experience{
			{Company: "Acme", Details: types.Flat{Highlights: []types.Highlight{{Text: "x"}}}},
		},
	}
}

func TestResolve_Datasets(t *testing.T) {
	full, err := Resolve(LengthFull)
	require.NoError(t, err)
	assert.Equal(t, "cv_data.yml", full.DataFile)
	assert.Equal(t, LayoutFull, full.Layout)

	concise, err := Resolve(LengthConcise)
	require.NoError(t, err)
	assert.Equal(t, "cv_data_concise.yml", concise.DataFile)
	assert.Equal(t, LayoutFull, concise.Layout)

	onepage, err := Resolve(LengthOnePage)
	require.NoError(t, err)
	assert.Equal(t, "cv_data_onepage.yml", onepage.DataFile)
	assert.Equal(t, LayoutCompact, onepage.Layout)
}

func TestResolve_UnknownLength(t *testing.T) {
	_, err := Resolve("tiny")
	assert.ErrorIs(t, err, ErrUnknownLength)
}

func TestSpecNames(t *testing.T) {
	cases := []struct {
		length  Length
		backend Backend
		public  string
		private string
	}{
		{LengthFull, BackendLaTeX, "cv-clean.tex", "cv-clean-phone.tex"},
		{LengthConcise, BackendLaTeX, "cv-concise.tex", "cv-concise-phone.tex"},
		{LengthOnePage, BackendLaTeX, "cv-onepage.tex", "cv-onepage-phone.tex"},
		{LengthFull, BackendDOCX, "cv.docx", "cv-phone.docx"},
		{LengthConcise, BackendDOCX, "cv-concise.docx", "cv-concise-phone.docx"},
		{LengthOnePage, BackendDOCX, "cv-onepage.docx", "cv-onepage-phone.docx"},
	}
	for _, tc := range cases {
		spec, err := Resolve(tc.length)
		require.NoError(t, err)
		names, err := spec.Names(tc.backend)
		require.NoError(t, err)
		assert.Equal(t, tc.public, names.Public, "%s/%s", tc.length, tc.backend)
		assert.Equal(t, tc.private, names.Private, "%s/%s", tc.length, tc.backend)
	}
}

func TestSpecNames_UnknownBackend(t *testing.T) {
	spec, err := Resolve(LengthFull)
	require.NoError(t, err)
	_, err = spec.Names("pdf")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestParseLength(t *testing.T) {
	l, err := ParseLength("onepage")
	require.NoError(t, err)
	assert.Equal(t, LengthOnePage, l)

	_, err = ParseLength("huge")
	assert.ErrorIs(t, err, ErrUnknownLength)
}

func TestPrivacies_PublicFirst(t *testing.T) {
	assert.Equal(t, []Privacy{Public, Private}, Privacies())
}

func TestSelect_PrivateSetsPhoneOnCopy(t *testing.T) {
	cv := sampleCV()
	res, err := Select(cv, Request{Length: LengthFull, Privacy: Private}, "+1 555 0100")
	require.NoError(t, err)

	assert.Equal(t, "+1 555 0100", res.CV.Contact.Phone)
	assert.Empty(t, cv.Contact.Phone, "loaded record must not be modified")
	assert.Equal(t, "cv-clean-phone.tex", res.Filename)
	assert.Equal(t, Private, res.Privacy)
}

func TestSelect_PrivateWithoutPhone(t *testing.T) {
	_, err := Select(sampleCV(), Request{Length: LengthFull, Privacy: Private}, "")
	assert.ErrorIs(t, err, ErrPhoneRequired)
}

func TestSelect_PublicClearsPhone(t *testing.T) {
	cv := sampleCV()
	cv.Contact.Phone = "leaked"

	res, err := Select(cv, Request{Length: LengthOnePage, Privacy: Public, Backend: BackendDOCX}, "+1 555 0100")
	require.NoError(t, err)
	assert.Empty(t, res.CV.Contact.Phone)
	assert.Equal(t, "leaked", cv.Contact.Phone)
	assert.Equal(t, LayoutCompact, res.Layout)
	assert.Equal(t, "cv-onepage.docx", res.Filename)
	assert.Equal(t, "cv-onepage-phone.docx", res.PrivateName)
}

func TestSelect_DeepCopy(t *testing.T) {
	cv := sampleCV()
	res, err := Select(cv, Request{Length: LengthFull, Privacy: Public}, "")
	require.NoError(t, err)

	res.CV.Experience[0].Company = "Changed"
	assert.Equal(t, "Acme", cv.Experience[0].Company)
}

func TestSelect_UnknownPrivacy(t *testing.T) {
	_, err := Select(sampleCV(), Request{Length: LengthFull, Privacy: "secret"}, "x")
	assert.ErrorIs(t, err, ErrUnknownPrivacy)
}

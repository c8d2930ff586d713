package textutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_Empty(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDate_Present(t *testing.T) {
	assert.Equal(t, "Present", FormatDate("present"))
}

func TestFormatDate_YearOnly(t *testing.T) {
	assert.Equal(t, "2019", FormatDate("2019"))
}

func TestFormatDate_AllMonths(t *testing.T) {
	expected := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for i, name := range expected {
		input := fmt.Sprintf("2021-%02d", i+1)
		assert.Equal(t, name+" 2021", FormatDate(input), input)
	}
}

func TestFormatDate_InvalidMonthPassesThrough(t *testing.T) {
	assert.Equal(t, "2021-13", FormatDate("2021-13"))
	assert.Equal(t, "2021-xx", FormatDate("2021-xx"))
}

func TestFormatYear(t *testing.T) {
	assert.Equal(t, "2018", FormatYear("2018-04"))
	assert.Equal(t, "2018", FormatYear("2018"))
	assert.Equal(t, "Present", FormatYear("present"))
}

func TestShortMonthYear(t *testing.T) {
	assert.Equal(t, "Mar 2024", ShortMonthYear("2024", 3))
	assert.Equal(t, "2024", ShortMonthYear("2024", 0))
}

package excel2xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDateInString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// numeric dates
		{"1990-03-01", "GREGORIAN:CE:1990-03-01:CE:1990-03-01"},
		{"created 2021-01-31 in Bern", "GREGORIAN:CE:2021-01-31:CE:2021-01-31"},
		{"31.1.2021", "GREGORIAN:CE:2021-01-31:CE:2021-01-31"},
		{"31/1/2021", "GREGORIAN:CE:2021-01-31:CE:2021-01-31"},
		{"31.1.2021 - 2.2.2021", "GREGORIAN:CE:2021-01-31:CE:2021-02-02"},
		{"28.2.-1.12.1515", "GREGORIAN:CE:1515-02-28:CE:1515-12-01"},
		{"25.-26.2.0800", "GREGORIAN:CE:0800-02-25:CE:0800-02-26"},

		// month names
		{"Jan 26, 1993", "GREGORIAN:CE:1993-01-26:CE:1993-01-26"},
		{"9 February 1990", "GREGORIAN:CE:1990-02-09:CE:1990-02-09"},
		{"May 1990", "GREGORIAN:CE:1990-05:CE:1990-05"},
		{"March 2001", "GREGORIAN:CE:2001-03:CE:2001-03"},
		{"bought on 3 sept. 1921", "GREGORIAN:CE:1921-09-03:CE:1921-09-03"},
		{"DECEMBER 31, 1999", "GREGORIAN:CE:1999-12-31:CE:1999-12-31"},
		{"Feb 30, 1999", "GREGORIAN:CE:1999:CE:1999"},

		// years and eras
		{"ca. 1849/50", "GREGORIAN:CE:1849:CE:1850"},
		{"1849-1850", "GREGORIAN:CE:1849:CE:1850"},
		{"840-50", "GREGORIAN:CE:840:CE:850"},
		{"840/1", "GREGORIAN:CE:840:CE:841"},
		{"Inv. 2021-5", "GREGORIAN:CE:2021:CE:2021"},
		{"250-200 BC", "GREGORIAN:BC:250:BC:200"},
		{"9 BC - AD 8", "GREGORIAN:BC:9:CE:8"},
		{"2021", "GREGORIAN:CE:2021:CE:2021"},

		// no date
		{"", ""},
		{"unknown", ""},
		{"n.d.", ""},
		{"31.1.21", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FindDateInString(tt.in))
		})
	}
}

func TestFindDateInStringFallsBackToYear(t *testing.T) {
	// an impossible calendar date still yields its year
	assert.Equal(t, "GREGORIAN:CE:2021:CE:2021", FindDateInString("2021-02-30"))
	assert.Equal(t, "GREGORIAN:CE:2021:CE:2021", FindDateInString("30.2.2021"))
}

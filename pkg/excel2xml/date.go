package excel2xml

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	lb = `(?:^|[^0-9A-Za-z])`
	rb = `(?:$|[^0-9A-Za-z])`

	monthNames = `(?i:(January|February|March|April|May|June|July|August|September|October|November|December|Sept|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec))`
	eras       = `(BCE|BC|AD|CE)`
	dash       = `\s*[-–]\s*`
)

var (
	euRangeDate      = regexp.MustCompile(lb + `(\d{1,2})[./](\d{1,2})[./](\d{4})` + dash + `(\d{1,2})[./](\d{1,2})[./](\d{4})` + rb)
	dayMonthRange    = regexp.MustCompile(lb + `(\d{1,2})\.(\d{1,2})\.` + dash + `(\d{1,2})\.(\d{1,2})\.(\d{4})` + rb)
	dayRange         = regexp.MustCompile(lb + `(\d{1,2})\.` + dash + `(\d{1,2})\.(\d{1,2})\.(\d{4})` + rb)
	isoDate          = regexp.MustCompile(lb + `(\d{4})[-_](\d{1,2})[-_](\d{1,2})` + rb)
	euDate           = regexp.MustCompile(lb + `(\d{1,2})[./](\d{1,2})[./](\d{4})` + rb)
	monthDayYear     = regexp.MustCompile(lb + monthNames + `\.?\s*(\d{1,2}),?\s*(\d{4})` + rb)
	dayMonthYear     = regexp.MustCompile(lb + `(\d{1,2})\.?\s*` + monthNames + `\.?,?\s*(\d{4})` + rb)
	monthYear        = regexp.MustCompile(lb + monthNames + `\.?,?\s*(\d{4})` + rb)
	eraRange         = regexp.MustCompile(lb + `(?:(AD|CE)\s*)?(\d{1,4})\s*` + eras + `?` + dash + `(?:(AD|CE)\s*)?(\d{1,4})\s*` + eras + `?` + rb)
	eraYear          = regexp.MustCompile(lb + `(?:(AD|CE)\s*(\d{1,4})|(\d{1,4})\s*` + eras + `)` + rb)
	yearRange        = regexp.MustCompile(lb + `(\d{3,4})\s*(?:[-–]\s*(\d{2,4})|/\s*(\d{1,4}))` + rb)
	singleYear       = regexp.MustCompile(lb + `(\d{4})` + rb)
	monthNumberByKey = map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
)

// dateMatcher tries to extract a DSP date from one regexp match.
type dateMatcher struct {
	re    *regexp.Regexp
	parse func(m []string) (string, bool)
}

var dateMatchers = []dateMatcher{
	{euRangeDate, func(m []string) (string, bool) {
		return fullRange(m[3], m[2], m[1], m[6], m[5], m[4])
	}},
	{dayMonthRange, func(m []string) (string, bool) {
		return fullRange(m[5], m[2], m[1], m[5], m[4], m[3])
	}},
	{dayRange, func(m []string) (string, bool) {
		return fullRange(m[4], m[3], m[1], m[4], m[3], m[2])
	}},
	{isoDate, func(m []string) (string, bool) {
		return fullRange(m[1], m[2], m[3], m[1], m[2], m[3])
	}},
	{euDate, func(m []string) (string, bool) {
		return fullRange(m[3], m[2], m[1], m[3], m[2], m[1])
	}},
	{monthDayYear, func(m []string) (string, bool) {
		month := monthNumber(m[1])
		return fullRange(m[3], strconv.Itoa(month), m[2], m[3], strconv.Itoa(month), m[2])
	}},
	{dayMonthYear, func(m []string) (string, bool) {
		month := monthNumber(m[2])
		return fullRange(m[3], strconv.Itoa(month), m[1], m[3], strconv.Itoa(month), m[1])
	}},
	{monthYear, func(m []string) (string, bool) {
		year, err := strconv.Atoi(m[2])
		month := monthNumber(m[1])
		if err != nil || year == 0 || month == 0 {
			return "", false
		}
		d := fmt.Sprintf("%04d-%02d", year, month)
		return "GREGORIAN:CE:" + d + ":CE:" + d, true
	}},
	{eraRange, parseEraRange},
	{eraYear, func(m []string) (string, bool) {
		era, year := "CE", m[2]
		if year == "" {
			era, year = normalizeEra(m[4]), m[3]
		}
		y, err := strconv.Atoi(year)
		if err != nil || y == 0 {
			return "", false
		}
		return fmt.Sprintf("GREGORIAN:%s:%d:%s:%d", era, y, era, y), true
	}},
	{yearRange, func(m []string) (string, bool) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		endText := m[2]
		if endText == "" {
			endText = m[3]
		}
		if len(endText) < len(m[1]) {
			endText = m[1][:len(m[1])-len(endText)] + endText
		}
		end, err := strconv.Atoi(endText)
		if err != nil || start == 0 || end < start {
			return "", false
		}
		return fmt.Sprintf("GREGORIAN:CE:%d:CE:%d", start, end), true
	}},
	{singleYear, func(m []string) (string, bool) {
		y, err := strconv.Atoi(m[1])
		if err != nil || y == 0 {
			return "", false
		}
		return fmt.Sprintf("GREGORIAN:CE:%d:CE:%d", y, y), true
	}},
}

// FindDateInString returns the first date found in s, formatted as a DSP
// date ("GREGORIAN:CE:1990-03-01:CE:1990-03-01"), or "" if s contains no
// date. Dates are read as Gregorian, day before month for numeric dates,
// and two-digit years are ignored. A single-digit year range end is only
// read after a slash, so "2021-5" is the year 2021.
//
// Supported forms include 2021-01-31, 31.1.2021, 31/1/2021, ranges of these,
// 28.2.-1.12.1515, 25.-26.2.0800, "Jan 26, 1993", "9 February 1990",
// "May 1990", 1849/50, 1849-1850, 840-50, 840/1, "250-200 BC", "9 BC - AD 8" and
// single years.
func FindDateInString(s string) string {
	for _, dm := range dateMatchers {
		for _, m := range dm.re.FindAllStringSubmatch(s, -1) {
			if date, ok := dm.parse(m); ok {
				return date
			}
		}
	}
	return ""
}

func monthNumber(name string) int {
	key := strings.ToLower(name)
	if len(key) > 3 {
		key = key[:3]
	}
	return monthNumberByKey[key]
}

func normalizeEra(era string) string {
	switch era {
	case "BC", "BCE":
		return "BC"
	}
	return "CE"
}

func parseEraRange(m []string) (string, bool) {
	startEra, endEra := m[3], m[6]
	if m[1] != "" {
		startEra = m[1]
	}
	if m[4] != "" {
		endEra = m[4]
	}
	if startEra == "" && endEra == "" {
		return "", false
	}
	if startEra == "" {
		startEra = endEra
	}
	if endEra == "" {
		endEra = startEra
	}
	start, err1 := strconv.Atoi(m[2])
	end, err2 := strconv.Atoi(m[5])
	if err1 != nil || err2 != nil || start == 0 || end == 0 {
		return "", false
	}
	startEra, endEra = normalizeEra(startEra), normalizeEra(endEra)
	switch {
	case startEra == "BC" && endEra == "BC" && end > start:
		return "", false
	case startEra == "CE" && endEra == "CE" && end < start:
		return "", false
	case startEra == "CE" && endEra == "BC":
		return "", false
	}
	return fmt.Sprintf("GREGORIAN:%s:%d:%s:%d", startEra, start, endEra, end), true
}

// fullRange validates two calendar dates given as year, month, day strings
// and formats them as a DSP date range.
func fullRange(y1, m1, d1, y2, m2, d2 string) (string, bool) {
	start, ok := calendarDate(y1, m1, d1)
	if !ok {
		return "", false
	}
	end, ok := calendarDate(y2, m2, d2)
	if !ok || end.Before(start) {
		return "", false
	}
	return "GREGORIAN:CE:" + start.Format("2006-01-02") + ":CE:" + end.Format("2006-01-02"), true
}

func calendarDate(year, month, day string) (time.Time, bool) {
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil || y == 0 || m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

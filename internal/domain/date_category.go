package domain

import (
	"time"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// DateCategory pricing category of a calendar date
type DateCategory string

const (
	DateVardag DateCategory = "vardag" // weekday
	DateHelg   DateCategory = "helg"   // weekend
	DateSasong DateCategory = "sasong" // summer season
	DateHogtid DateCategory = "hogtid" // holiday period
)

// DateCategories all date categories
var DateCategories = []DateCategory{DateVardag, DateHelg, DateSasong, DateHogtid}

// IsValid returns true if the date category is known
func (c DateCategory) IsValid() bool {
	switch c {
	case DateVardag, DateHelg, DateSasong, DateHogtid:
		return true
	}
	return false
}

// ClassifyDate returns the pricing category of a date.
// Weekend takes precedence over the season and holiday months.
func ClassifyDate(date types.Date) DateCategory {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DateHelg
	}

	switch date.Month() {
	case time.June, time.July, time.August:
		return DateSasong
	case time.December, time.January:
		return DateHogtid
	}

	return DateVardag
}

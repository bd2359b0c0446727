package domain

import "strings"

// Category is a broad spending category assigned to every transaction.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryShopping      Category = "SHOPPING"
	CategoryHealthcare    Category = "HEALTHCARE"
	CategoryCommunication Category = "COMMUNICATION"
	CategoryEducation     Category = "EDUCATION"
	CategoryTravel        Category = "TRAVEL"
	CategoryIncome        Category = "INCOME"
	CategoryOther         Category = "OTHER"
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryCommunication,
	CategoryEducation,
	CategoryTravel,
	CategoryIncome,
	CategoryOther,
}

// ParseCategory matches a category name case-insensitively.
// The second return value is false for empty or unknown labels.
func ParseCategory(label string) (Category, bool) {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if upper == "" {
		return "", false
	}
	for _, c := range AllCategories {
		if string(c) == upper {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

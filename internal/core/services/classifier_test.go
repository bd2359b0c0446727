package services_test

import (
	"testing"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/SscSPs/transaction_insights_api/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	c := services.NewKeywordClassifier()

	tests := []struct {
		name        string
		description string
		merchant    string
		mcc         string
		want        domain.Category
	}{
		{"coffee at a cafe", "Morning Coffee", "Cafe Luna", "5812", domain.CategoryFood},
		{"gas station beats gas", "Fuel top-up", "Shell Gas Station", "5541", domain.CategoryTransport},
		{"plain gas is a utility", "Monthly gas bill", "City Gas Co", "4900", domain.CategoryUtilities},
		{"airline beats air", "Trip", "SkyHigh Airline", "4511", domain.CategoryTravel},
		{"supermarket", "Weekly shop", "FreshMart Supermarket", "5411", domain.CategoryFood},
		{"streaming", "Subscription", "Netflix", "4899", domain.CategoryEntertainment},
		{"pharmacy", "Prescription", "Greenleaf Pharmacy", "5912", domain.CategoryHealthcare},
		{"telecom", "Mobile plan", "TelcoNet Telecom", "4814", domain.CategoryCommunication},
		{"university", "Tuition fee", "State University", "8220", domain.CategoryEducation},
		{"payroll", "Monthly salary", "Acme Payroll", "6011", domain.CategoryIncome},
		{"case insensitive", "UBER TRIP", "", "", domain.CategoryTransport},
		{"no match", "Gift", "Unknown Vendor", "0000", domain.CategoryOther},
		{"empty", "", "", "", domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.description, tt.merchant, tt.mcc))
		})
	}
}

func TestKeywordClassifier_Deterministic(t *testing.T) {
	c := services.NewKeywordClassifier()
	for i := 0; i < 50; i++ {
		assert.Equal(t, domain.CategoryTransport, c.Classify("", "Gas Station 42", ""))
	}
}

func TestKeywordClassifier_CustomRules(t *testing.T) {
	c := services.NewKeywordClassifier(
		services.KeywordRule{Keyword: "Book", Category: domain.CategoryEducation},
		services.KeywordRule{Keyword: "booking", Category: domain.CategoryTravel},
		services.KeywordRule{Keyword: "  ", Category: domain.CategoryFood},
	)

	assert.Equal(t, domain.CategoryTravel, c.Classify("Hotel booking", "", ""))
	assert.Equal(t, domain.CategoryEducation, c.Classify("Used book", "", ""))
	assert.Equal(t, domain.CategoryOther, c.Classify("anything else", "", ""))
}

func TestDefaultKeywordRules_DeclarationOrder(t *testing.T) {
	rules := services.DefaultKeywordRules()

	assert.Equal(t, services.KeywordRule{Keyword: "grocery", Category: domain.CategoryFood}, rules[0])
	assert.Equal(t, services.KeywordRule{Keyword: "bonus", Category: domain.CategoryIncome}, rules[len(rules)-1])
}

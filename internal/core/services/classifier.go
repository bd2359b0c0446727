package services

import (
	"sort"
	"strings"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
)

// KeywordRule maps a lower-case keyword to the category it implies.
type KeywordRule struct {
	Keyword  string
	Category domain.Category
}

// defaultKeywords is grouped by category in declaration order.
var defaultKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryFood, []string{"grocery", "market", "supermarket", "food", "restaurant", "cafe", "coffee"}},
	{domain.CategoryTransport, []string{"uber", "taxi", "bus", "train", "fuel", "gas station", "petrol", "subway", "transport"}},
	{domain.CategoryUtilities, []string{"electric", "gas", "water", "utility", "power", "energy"}},
	{domain.CategoryEntertainment, []string{"cinema", "movie", "netflix", "theatre", "concert", "entertainment", "game"}},
	{domain.CategoryShopping, []string{"shop", "store", "mall", "clothes", "amazon", "ecommerce", "retail"}},
	{domain.CategoryHealthcare, []string{"pharmacy", "doctor", "hospital", "clinic", "medicine", "dentist"}},
	{domain.CategoryCommunication, []string{"phone", "internet", "cell", "mobile", "telecom", "data"}},
	{domain.CategoryEducation, []string{"school", "university", "tuition", "course", "college", "education"}},
	{domain.CategoryTravel, []string{"flight", "airline", "hotel", "travel", "air", "booking", "airbnb"}},
	{domain.CategoryIncome, []string{"salary", "payroll", "deposit", "income", "bonus"}},
}

// DefaultKeywordRules returns the built-in rule table in declaration order.
func DefaultKeywordRules() []KeywordRule {
	var rules []KeywordRule
	for _, group := range defaultKeywords {
		for _, k := range group.keywords {
			rules = append(rules, KeywordRule{Keyword: k, Category: group.category})
		}
	}
	return rules
}

// keywordClassifier matches keywords as substrings of the combined transaction text.
// Rules are evaluated longest keyword first, then in declaration order, so
// "gas station" wins over "gas" and "airline" over "air".
type keywordClassifier struct {
	rules []KeywordRule
}

// NewKeywordClassifier creates a classifier over the given rules.
// With no rules the built-in table is used.
func NewKeywordClassifier(rules ...KeywordRule) portssvc.CategoryClassifier {
	if len(rules) == 0 {
		rules = DefaultKeywordRules()
	}
	ordered := make([]KeywordRule, 0, len(rules))
	for _, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" {
			continue
		}
		ordered = append(ordered, KeywordRule{Keyword: kw, Category: r.Category})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Keyword) > len(ordered[j].Keyword)
	})
	return &keywordClassifier{rules: ordered}
}

var _ portssvc.CategoryClassifier = (*keywordClassifier)(nil)

// Classify returns the category of the first matching rule, or OTHER.
func (c *keywordClassifier) Classify(description, merchant, mcc string) domain.Category {
	combined := strings.ToLower(description + " " + merchant + " " + mcc)
	for _, r := range c.rules {
		if strings.Contains(combined, r.Keyword) {
			return r.Category
		}
	}
	return domain.CategoryOther
}

package services

import (
	"strings"

	"smsledger/internal/models"
)

// CategoryKeywords binds one category to its lowercase keyword set.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// CategoryClassifier maps a (merchant, body) pair to a spending category by
// ordered keyword membership. The table order is the tie-break contract:
// the first category with any keyword hit wins.
type CategoryClassifier struct {
	table []CategoryKeywords
}

// NewCategoryClassifier creates a classifier over the given keyword table.
// A nil table gets the built-in defaults.
func NewCategoryClassifier(table []CategoryKeywords) *CategoryClassifier {
	if table == nil {
		table = DefaultCategoryKeywords()
	}
	return &CategoryClassifier{table: table}
}

// Classify returns the first category whose keyword set intersects the
// lowercased merchant+body text, or OTHER when none match. Classification
// still runs against body-only keywords when no merchant was resolved.
func (c *CategoryClassifier) Classify(merchant, body string) string {
	haystack := strings.ToLower(merchant + " " + body)

	for _, entry := range c.table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(haystack, keyword) {
				return entry.Category
			}
		}
	}

	return models.CategoryOther
}

// DefaultCategoryKeywords returns the built-in keyword table in tie-break
// order, matching models.OrderedCategories.
func DefaultCategoryKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{Category: models.CategoryTransport, Keywords: []string{
			"uber", "ola cabs", "lyft", "rapido", "taxi", "cab ride", "metro card", "transit",
		}},
		{Category: models.CategoryFuel, Keywords: []string{
			"fuel", "petrol", "diesel", "gas station", "shell", "chevron", "indianoil", "hpcl", "bpcl",
		}},
		{Category: models.CategoryGroceries, Keywords: []string{
			"grocery", "groceries", "bigbasket", "blinkit", "instamart", "supermarket", "kroger", "safeway", "aldi",
		}},
		{Category: models.CategoryShopping, Keywords: []string{
			"amazon", "flipkart", "myntra", "walmart", "target", "ikea", "ebay", "mall", "store",
		}},
		{Category: models.CategoryFood, Keywords: []string{
			"swiggy", "zomato", "restaurant", "cafe", "starbucks", "mcdonald", "domino", "pizza", "burger", "dining",
		}},
		{Category: models.CategorySubscription, Keywords: []string{
			"netflix", "spotify", "hotstar", "prime video", "hulu", "subscription", "renewal", "membership",
		}},
		{Category: models.CategoryTravel, Keywords: []string{
			"flight", "airline", "airways", "hotel", "irctc", "makemytrip", "airbnb", "indigo", "booking.com", "oyo",
		}},
		{Category: models.CategoryEntertainment, Keywords: []string{
			"movie", "cinema", "pvr", "inox", "bookmyshow", "theatre", "concert", "gaming",
		}},
		{Category: models.CategoryBills, Keywords: []string{
			"electricity", "water bill", "bill payment", "recharge", "broadband", "postpaid", "dth", "utility",
		}},
		{Category: models.CategoryHealth, Keywords: []string{
			"pharmacy", "hospital", "clinic", "apollo", "medplus", "1mg", "doctor", "medical",
		}},
	}
}

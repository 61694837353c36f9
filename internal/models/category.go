package models

// Spending categories. The declaration order is a contract: the classifier
// tests categories in exactly this order and the first keyword hit wins, so
// a body mentioning both Uber and Walmart is TRANSPORT, not SHOPPING.
const (
	CategoryTransport     = "TRANSPORT"
	CategoryFuel          = "FUEL"
	CategoryGroceries     = "GROCERIES"
	CategoryShopping      = "SHOPPING"
	CategoryFood          = "FOOD"
	CategorySubscription  = "SUBSCRIPTION"
	CategoryTravel        = "TRAVEL"
	CategoryEntertainment = "ENTERTAINMENT"
	CategoryBills         = "BILLS"
	CategoryHealth        = "HEALTH"
	CategoryOther         = "OTHER"
)

// OrderedCategories returns every classifiable category in tie-break order.
// OTHER is the fallback and is not part of the iteration order.
func OrderedCategories() []string {
	return []string{
		CategoryTransport,
		CategoryFuel,
		CategoryGroceries,
		CategoryShopping,
		CategoryFood,
		CategorySubscription,
		CategoryTravel,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealth,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	if category == CategoryOther {
		return true
	}
	for _, valid := range OrderedCategories() {
		if category == valid {
			return true
		}
	}
	return false
}

package model

// Category classifies a transaction for aggregation. Expense and income
// categories are disjoint closed sets; labels outside either set are
// normalized to the matching "other" bucket rather than rejected, so
// legacy records keep aggregating predictably.
type Category string

// Expense categories.
const (
	CategoryGroceries     Category = "Groceries"
	CategoryDining        Category = "Dining"
	CategoryTransport     Category = "Transport"
	CategoryRent          Category = "Rent"
	CategoryUtilities     Category = "Utilities"
	CategoryHealth        Category = "Health"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// Income categories.
const (
	CategorySalary      Category = "Salary"
	CategoryBonus       Category = "Bonus"
	CategoryInterest    Category = "Interest"
	CategoryOtherIncome Category = "Other Income"
)

// Unclassified is the reconciliation remainder bucket used by the
// itemized drill-down. It is not a transaction category.
const Unclassified = "Unclassified"

var expenseCategories = []Category{
	CategoryGroceries,
	CategoryDining,
	CategoryTransport,
	CategoryRent,
	CategoryUtilities,
	CategoryHealth,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

var incomeCategories = []Category{
	CategorySalary,
	CategoryBonus,
	CategoryInterest,
	CategoryOtherIncome,
}

// ExpenseCategories returns the closed set of expense categories.
func ExpenseCategories() []Category {
	return expenseCategories
}

// IncomeCategories returns the closed set of income categories.
func IncomeCategories() []Category {
	return incomeCategories
}

// NormalizeCategory maps a free-form label onto the closed set for the
// given kind. Unrecognized or legacy labels fall back to the kind's
// "other" bucket.
func NormalizeCategory(kind Kind, label string) Category {
	c := Category(label)
	if kind == KindIncome {
		for _, known := range incomeCategories {
			if c == known {
				return c
			}
		}
		return CategoryOtherIncome
	}
	for _, known := range expenseCategories {
		if c == known {
			return c
		}
	}
	return CategoryOther
}

// Attributes holds display metadata for a category.
type Attributes struct {
	Label string
	Icon  string
}

// Attributes returns display metadata for the category. The switch is
// exhaustive over both closed sets with a single fallback case.
func (c Category) Attributes() Attributes {
	switch c {
	case CategoryGroceries:
		return Attributes{Label: "Groceries", Icon: "🛒"}
	case CategoryDining:
		return Attributes{Label: "Dining", Icon: "🍽"}
	case CategoryTransport:
		return Attributes{Label: "Transport", Icon: "🚌"}
	case CategoryRent:
		return Attributes{Label: "Rent", Icon: "🏠"}
	case CategoryUtilities:
		return Attributes{Label: "Utilities", Icon: "💡"}
	case CategoryHealth:
		return Attributes{Label: "Health", Icon: "🏥"}
	case CategoryEntertainment:
		return Attributes{Label: "Entertainment", Icon: "🎬"}
	case CategoryShopping:
		return Attributes{Label: "Shopping", Icon: "🛍"}
	case CategorySalary:
		return Attributes{Label: "Salary", Icon: "💼"}
	case CategoryBonus:
		return Attributes{Label: "Bonus", Icon: "🎁"}
	case CategoryInterest:
		return Attributes{Label: "Interest", Icon: "🏦"}
	case CategoryOtherIncome:
		return Attributes{Label: "Other Income", Icon: "💰"}
	default:
		return Attributes{Label: string(c), Icon: "📌"}
	}
}

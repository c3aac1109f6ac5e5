package core

// Category lists are the single source of truth for what a credit or debit
// transaction may be filed under. Both validation and the chart/export
// formatters read from here.

var debitCategories = []string{
	"Food & Dining",
	"Transport",
	"Shopping",
	"Bills & Utilities",
	"Education / Learning",
	"Household and Transfers",
	"Entertainment",
	"Health",
	"Miscellaneous",
}

var creditCategories = []string{
	"Salary",
	"Freelance",
	"Refunds/Cashbacks",
	"Other Income",
}

// Categories returns the category list for a type. The returned slice is a
// copy; mutating it does not affect validation.
func Categories(t TxType) []string {
	switch t {
	case Credit:
		return append([]string(nil), creditCategories...)
	case Debit:
		return append([]string(nil), debitCategories...)
	}
	return nil
}

// CategoryValid reports whether name belongs to the category set for t.
func CategoryValid(t TxType, name string) bool {
	for _, c := range categoriesFor(t) {
		if c == name {
			return true
		}
	}
	return false
}

func categoriesFor(t TxType) []string {
	if t == Credit {
		return creditCategories
	}
	return debitCategories
}

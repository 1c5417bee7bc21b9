package model

// Categories is the fixed set of transaction category labels offered at
// entry. The data model itself does not enforce membership; free-form
// categories can still arrive through import.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Travel",
	"Education",
	"Salary",
	"Freelance",
	"Investment",
	"Other",
}

// KnownCategory reports whether name is one of the standard category labels.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

package domain

import "strings"

// Nationalities is the closed set of accepted author nationalities.
var Nationalities = []string{
	"Austrian", "Belgian", "British", "Croatian", "Czech", "Danish",
	"Dutch", "Estonian", "Finnish", "French", "German", "Greek",
	"Hungarian", "Irish", "Italian", "Latvian", "Lithuanian", "Maltese",
	"Polish", "Portuguese", "Romanian", "Slovak", "Slovenian", "Spanish",
	"Swedish", "Ukrainian",
}

// BookCategories is the closed set of accepted book categories.
var BookCategories = []string{
	"Fiction", "Non", "Mystery", "Science Fiction", "Romance",
	"Historical Fiction", "Biography", "Self-help", "Business", "Travel",
}

// ValidNationality reports whether s names a known nationality.
// Matching is case-insensitive; the submitted spelling is what gets stored.
func ValidNationality(s string) bool {
	return containsFold(Nationalities, s)
}

// ValidCategory reports whether s names a known book category.
func ValidCategory(s string) bool {
	return containsFold(BookCategories, s)
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

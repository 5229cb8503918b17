package entity

// Category groups assets for browsing. Unknown values are kept as-is so that newer
// categories survive a round trip through older builds.
type Category string

const (
	CategoryRealEstate Category = "Real Estate"
	CategorySupercar   Category = "Supercar"
	CategoryClassic    Category = "Classic"
	CategoryOffroad    Category = "Desert 4x4"
	CategoryYacht      Category = "Yacht"
	CategoryJet        Category = "Jet"
	CategorySuperbike  Category = "Superbike"
	CategoryWatch      Category = "Watch"
	CategoryArt        Category = "Art"
)

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "All"

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryRealEstate,
		CategorySupercar,
		CategoryClassic,
		CategoryOffroad,
		CategoryYacht,
		CategoryJet,
		CategorySuperbike,
		CategoryWatch,
		CategoryArt,
	}
}

// IsKnown reports whether c is one of the built-in categories.
func (c Category) IsKnown() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// Visibility controls where an asset is listed.
type Visibility string

const (
	// VisibilityPublic assets appear in the marketplace and similar-asset queries.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate assets only appear in the owner's portfolio.
	VisibilityPrivate Visibility = "private"
)

// IsValid reports whether v is public or private.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

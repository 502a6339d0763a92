// internal/models/common.go
package models

// Product categories offered by the storefront. "Other" is the default
// assigned to freshly selected draft items.
const (
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home"
	CategoryBeauty      = "Beauty"
	CategoryFoodDrink   = "Food & Drink"
	CategoryOther       = "Other"
)

var Categories = []string{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryBeauty,
	CategoryFoodDrink,
	CategoryOther,
}

// Primary shopper segments used by the grid's category scroller. A grid
// filter matches either a product's category or its segment tag.
const (
	SegmentMen         = "Men"
	SegmentWomen       = "Women"
	SegmentFootwear    = "Footwear"
	SegmentAccessories = "Accessories"
)

var Segments = []string{
	SegmentMen,
	SegmentWomen,
	SegmentFootwear,
	SegmentAccessories,
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

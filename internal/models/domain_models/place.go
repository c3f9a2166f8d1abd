package domain_models

// Category is one value of the fixed preference taxonomy.
type Category string

const (
	CategoryBeach     Category = "beach"
	CategoryHistory   Category = "history"
	CategoryAdventure Category = "adventure"
	CategoryFood      Category = "food"
	CategoryShopping  Category = "shopping"
	CategoryNature    Category = "nature"
	CategoryReligious Category = "religious"
	CategoryCultural  Category = "cultural"
)

// CategoryNeutral is the fallback used when a catalog row carries a
// category outside the taxonomy.
const CategoryNeutral = CategoryCultural

func AllCategories() []Category {
	return []Category{
		CategoryBeach,
		CategoryHistory,
		CategoryAdventure,
		CategoryFood,
		CategoryShopping,
		CategoryNature,
		CategoryReligious,
		CategoryCultural,
	}
}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryBeach, CategoryHistory, CategoryAdventure, CategoryFood,
		CategoryShopping, CategoryNature, CategoryReligious, CategoryCultural:
		return Category(s), true
	}
	return "", false
}

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Place is a candidate attraction as served by the catalog. Instances are
// immutable for the duration of one planning request.
type Place struct {
	ID            string
	Name          string
	Category      Category
	Latitude      float64
	Longitude     float64
	Rating        float64
	ReviewCount   int
	EstimatedCost float64
	VisitMinutes  int // 0 means "use the category default"
	Description   string
	City          string
	ImageURLs     []string
}

func (p Place) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// ScoredPlace pairs a place with its composite desirability score in [0,100].
type ScoredPlace struct {
	Place Place
	Score float64
}

package models

// Location represents a registered place together with its accessibility
// associations and the rating/level derived from them.
type Location struct {
	ID                    int                  `json:"id"`
	Name                  string               `json:"name"`
	Description           string               `json:"description"`
	Address               string               `json:"address"`
	Latitude              float64              `json:"latitude"`
	Longitude             float64              `json:"longitude"`
	Rating                float64              `json:"rating"`
	ImageURL              string               `json:"image_url"`
	AccessibilityFeatures []Ref                `json:"accessibility_features"`
	Categories            []Ref                `json:"categories"`
	AccessibilityLevels   []AccessibilityLevel `json:"accessibility_levels"`
	// Reviews are loaded only for the addressed entity; list responses
	// leave the slice nil and omit the field.
	Reviews []Review `json:"reviews,omitzero"`
}

// Ref is the {id, name} summary shape used for nested reference entities.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LocationParams carries create/update input. Nil pointer fields are left
// untouched on update; nil association slices keep the existing edges.
type LocationParams struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ImageURL    *string  `json:"image_url"`
	FeatureIDs  []int    `json:"accessibility_features"`
	CategoryIDs []int    `json:"categories"`
}

// LocationFilter narrows catalog listings. Name filters use OR semantics
// within a dimension and AND across dimensions; MinRating is inclusive.
type LocationFilter struct {
	Categories []string
	Features   []string
	MinRating  *float64
}

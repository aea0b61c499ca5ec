package models

// AccessibilityFeature is a tag such as "Ramp" or "Braille signs".
type AccessibilityFeature struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category is a venue kind such as "Cafe" or "Museum".
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AccessibilityLevel is one of the four classification buckets. Rows are
// created and recolored by the classification engine, never by clients.
type AccessibilityLevel struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

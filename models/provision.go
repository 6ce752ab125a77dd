package models

// Provision represents a single statute, amendment or rule entry
type Provision struct {
	Title     string `json:"title"`
	Provision string `json:"provision"` // Full legal text
	Article   string `json:"article"`   // Citation label, e.g. "Amendment I"
}

// Category represents a named, ordered group of provisions
type Category struct {
	Name       string      `json:"name"`
	Provisions []Provision `json:"provisions"`
}

package models

// Acknowledgment represents an upstream project credited on the about page
type Acknowledgment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}

// Feature represents a capability blurb on the about page
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ImplementationStatus represents one card of the implementation status grid
type ImplementationStatus struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ProjectInfo represents the static project metadata shown in the about section
type ProjectInfo struct {
	Name                 string                 `json:"name"`
	Headline             string                 `json:"headline"`
	RepositoryURL        string                 `json:"repository_url"`
	Description          string                 `json:"description"`
	PretrainedModelsPath string                 `json:"pretrained_models_path"`
	Features             []Feature              `json:"features"`
	Implementation       []ImplementationStatus `json:"implementation"`
	Roadmap              []Feature              `json:"roadmap"`
	Acknowledgments      []Acknowledgment       `json:"acknowledgments"`
	Disclaimer           string                 `json:"disclaimer"` // Markdown
}

package app

// SectionID identifies one of the mutually exclusive top-level views
type SectionID string

const (
	SectionConsultation SectionID = "consultation"
	SectionProvisions   SectionID = "provisions"
	SectionCases        SectionID = "cases"
	SectionAbout        SectionID = "about"
)

// SectionView is a registered top-level view
type SectionView struct {
	ID    SectionID `json:"id"`
	Label string    `json:"label"`
}

// DefaultSections returns the portal's views in navigation order
func DefaultSections() []SectionView {
	return []SectionView{
		{ID: SectionConsultation, Label: "Legal Consultation"},
		{ID: SectionProvisions, Label: "US Legal Provisions"},
		{ID: SectionCases, Label: "Landmark Cases"},
		{ID: SectionAbout, Label: "About"},
	}
}

// State is the application's entire selection state. It is owned by App and only changed
// by its controllers.
type State struct {
	Section  SectionID `json:"section"`
	Category string    `json:"category"`
}

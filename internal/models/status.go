package models

// ContentStatus is the publication state shared by every content entity.
type ContentStatus int

const (
	StatusDraft     ContentStatus = 0
	StatusPublished ContentStatus = 1
	StatusHidden    ContentStatus = 2
)

func (s ContentStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusPublished:
		return "published"
	case StatusHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

func (s ContentStatus) Valid() bool {
	return s >= StatusDraft && s <= StatusHidden
}

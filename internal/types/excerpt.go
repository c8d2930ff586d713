package types

// Excerpt carries the fields needed to build one preview image.
type Excerpt struct {
	Slug           string
	Title          string
	Description    string
	DateLabel      string
	ReadingMinutes int
	Tag            string
	Source         string
}

package models

// Category groups crafts.
type Category struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c Category) GetID() int64 { return c.ID }

// CategoryDraft is the category form.
type CategoryDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DraftOf returns the editable fields of c.
func (c Category) DraftOf() CategoryDraft {
	return CategoryDraft{Title: c.Title, Description: c.Description}
}

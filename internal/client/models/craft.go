package models

import (
	"github.com/shopspring/decimal"
)

// CategoryRef is the category summary the backend embeds in a craft.
type CategoryRef struct {
	Title string `json:"title"`
}

// Craft is a handmade product offered in the store.
type Craft struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  int64           `json:"categoryId"`
	Image       string          `json:"image,omitempty"`
	Category    *CategoryRef    `json:"CraftCategory,omitempty"`
}

func (c Craft) GetID() int64 { return c.ID }

// CategoryTitle returns the embedded category title or "Sin Categoría".
func (c Craft) CategoryTitle() string {
	if c.Category == nil || c.Category.Title == "" {
		return "Sin Categoría"
	}
	return c.Category.Title
}

// CraftDraft holds the craft form fields as typed. Image is either the
// resolved URL of the current server image or a local file reference.
type CraftDraft struct {
	Title       string
	Description string
	Price       string
	Stock       string
	CategoryID  int64
	Image       string
}

package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Buyer is the user summary the backend embeds in admin sale listings.
type Buyer struct {
	Nombre string `json:"nombre"`
}

// Sale is a purchase of a craft. TotalPrice is computed by the server.
type Sale struct {
	ID         int64           `json:"id"`
	CraftID    int64           `json:"craftId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CraftName  string          `json:"craftName"`
	User       *Buyer          `json:"User,omitempty"`
}

func (s Sale) GetID() int64 { return s.ID }

// BuyerName returns the buyer's name or "Desconocido".
func (s Sale) BuyerName() string {
	if s.User == nil || s.User.Nombre == "" {
		return "Desconocido"
	}
	return s.User.Nombre
}

// SaleDraft is the purchase form: a picked craft and a typed quantity.
type SaleDraft struct {
	CraftID  int64
	Quantity string
}

// Validate requires both the craft and the quantity. Stock is not checked.
func (d SaleDraft) Validate() error {
	if d.CraftID == 0 || strings.TrimSpace(d.Quantity) == "" {
		return ErrMissingField
	}
	return nil
}

// DraftOf returns the editable fields of s.
func (s Sale) DraftOf() SaleDraft {
	return SaleDraft{CraftID: s.CraftID, Quantity: strconv.Itoa(s.Quantity)}
}

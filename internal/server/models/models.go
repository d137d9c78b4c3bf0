// Package models defines the records kept by the development backend and
// their JSON shape on the wire.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin  = "Administrador"
	RoleClient = "Cliente"
)

type User struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Telefono     string    `json:"telefono"`
	Rol          string    `json:"rol"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

type Category struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryRef is embedded in crafts as "CraftCategory".
type CategoryRef struct {
	Title string `json:"title"`
}

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

// Buyer is embedded in sales as "User".
type Buyer struct {
	Nombre string `json:"nombre"`
}

type Sale struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	CraftID    int64           `json:"craftId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CraftName  string          `json:"craftName"`
	User       *Buyer          `json:"User,omitempty"`
	CreatedAt  time.Time       `json:"-"`
}

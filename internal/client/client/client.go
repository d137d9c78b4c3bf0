package client

import (
	"context"

	"github.com/dmitrijs2005/craftstore/internal/client/media"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

// RegisterReply is what POST /api/users/register may answer: some
// backends log the new user in immediately, others only confirm.
type RegisterReply struct {
	Token   string
	Success bool
}

type AuthAPI interface {
	Login(ctx context.Context, c models.Credentials) (string, error)
	Register(ctx context.Context, c models.Credentials) (RegisterReply, error)
	Me(ctx context.Context, token string) (models.User, error)
}

type CraftAPI interface {
	ListCrafts(ctx context.Context, token string) ([]models.Craft, error)
	CreateCraft(ctx context.Context, token string, d models.CraftDraft, image *media.File) (models.Craft, error)
	UpdateCraft(ctx context.Context, token string, id int64, d models.CraftDraft, image *media.File) (models.Craft, error)
	DeleteCraft(ctx context.Context, token string, id int64) error
}

type CategoryAPI interface {
	ListCategories(ctx context.Context, token string) ([]models.Category, error)
	CreateCategory(ctx context.Context, token string, d models.CategoryDraft) (models.Category, error)
	UpdateCategory(ctx context.Context, token string, id int64, d models.CategoryDraft) (models.Category, error)
	DeleteCategory(ctx context.Context, token string, id int64) error
}

type SaleAPI interface {
	ListSales(ctx context.Context, token string) ([]models.Sale, error)
	ListAllSales(ctx context.Context, token string) ([]models.Sale, error)
	CreateSale(ctx context.Context, token string, d models.SaleDraft) (models.Sale, error)
	UpdateSale(ctx context.Context, token string, id int64, d models.SaleDraft) (models.Sale, error)
	DeleteSale(ctx context.Context, token string, id int64) error
}

// Client is the whole backend surface used by the CLI.
type Client interface {
	AuthAPI
	CraftAPI
	CategoryAPI
	SaleAPI
	BaseURL() string
}

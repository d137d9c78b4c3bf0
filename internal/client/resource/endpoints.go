package resource

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/client/media"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/logging"
)

type (
	CraftSynchronizer    = Synchronizer[models.Craft, models.CraftDraft]
	CategorySynchronizer = Synchronizer[models.Category, models.CategoryDraft]
	SaleSynchronizer     = Synchronizer[models.Sale, models.SaleDraft]
)

// NewCraftSynchronizer backs the admin craft screen. Images picked from
// disk are uploaded with the form; images already on the server are not.
func NewCraftSynchronizer(api client.CraftAPI, s *models.Session, baseURL string, logger logging.Logger) *CraftSynchronizer {
	ep := &craftEndpoint{api: api, session: s, baseURL: baseURL}
	return New[models.Craft, models.CraftDraft]("crafts", ep, ep.draftOf, logger)
}

// NewCatalog is the read-only craft listing shown to every role.
func NewCatalog(api client.CraftAPI, s *models.Session, baseURL string, logger logging.Logger) *CraftSynchronizer {
	ep := &craftEndpoint{api: api, session: s, baseURL: baseURL, readOnly: true}
	return New[models.Craft, models.CraftDraft]("catalog", ep, ep.draftOf, logger)
}

func NewCategorySynchronizer(api client.CategoryAPI, s *models.Session, logger logging.Logger) *CategorySynchronizer {
	return New[models.Category, models.CategoryDraft]("categories", &categoryEndpoint{api: api, session: s}, models.Category.DraftOf, logger)
}

// NewSaleSynchronizer backs the purchases screen of the current user.
func NewSaleSynchronizer(api client.SaleAPI, s *models.Session, logger logging.Logger) *SaleSynchronizer {
	return New[models.Sale, models.SaleDraft]("sales", &saleEndpoint{api: api, session: s}, models.Sale.DraftOf, logger)
}

// NewSalesHistory lists the sales of every user. It cannot mutate.
func NewSalesHistory(api client.SaleAPI, s *models.Session, logger logging.Logger) *SaleSynchronizer {
	return New[models.Sale, models.SaleDraft]("sales-history", &saleEndpoint{api: api, session: s, all: true}, models.Sale.DraftOf, logger)
}

type craftEndpoint struct {
	api      client.CraftAPI
	session  *models.Session
	baseURL  string
	readOnly bool
}

func (e *craftEndpoint) List(ctx context.Context) ([]models.Craft, error) {
	return e.api.ListCrafts(ctx, e.session.Token())
}

func (e *craftEndpoint) Create(ctx context.Context, d models.CraftDraft) (models.Craft, error) {
	if e.readOnly {
		return models.Craft{}, ErrReadOnly
	}
	img, err := e.image(d.Image)
	if err != nil {
		return models.Craft{}, err
	}
	return e.api.CreateCraft(ctx, e.session.Token(), d, img)
}

func (e *craftEndpoint) Update(ctx context.Context, id int64, d models.CraftDraft) (models.Craft, error) {
	if e.readOnly {
		return models.Craft{}, ErrReadOnly
	}
	img, err := e.image(d.Image)
	if err != nil {
		return models.Craft{}, err
	}
	return e.api.UpdateCraft(ctx, e.session.Token(), id, d, img)
}

func (e *craftEndpoint) Delete(ctx context.Context, id int64) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.api.DeleteCraft(ctx, e.session.Token(), id)
}

// image loads ref only when it is a local file.
func (e *craftEndpoint) image(ref string) (*media.File, error) {
	if media.Classify(ref, e.baseURL) != media.Local {
		return nil, nil
	}
	f, err := media.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("craft image: %w", err)
	}
	return f, nil
}

func (e *craftEndpoint) draftOf(c models.Craft) models.CraftDraft {
	return models.CraftDraft{
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price.String(),
		Stock:       strconv.Itoa(c.Stock),
		CategoryID:  c.CategoryID,
		Image:       media.ResolveURL(e.baseURL, c.Image),
	}
}

type categoryEndpoint struct {
	api     client.CategoryAPI
	session *models.Session
}

func (e *categoryEndpoint) List(ctx context.Context) ([]models.Category, error) {
	return e.api.ListCategories(ctx, e.session.Token())
}

func (e *categoryEndpoint) Create(ctx context.Context, d models.CategoryDraft) (models.Category, error) {
	return e.api.CreateCategory(ctx, e.session.Token(), d)
}

func (e *categoryEndpoint) Update(ctx context.Context, id int64, d models.CategoryDraft) (models.Category, error) {
	return e.api.UpdateCategory(ctx, e.session.Token(), id, d)
}

func (e *categoryEndpoint) Delete(ctx context.Context, id int64) error {
	return e.api.DeleteCategory(ctx, e.session.Token(), id)
}

type saleEndpoint struct {
	api     client.SaleAPI
	session *models.Session
	all     bool
}

func (e *saleEndpoint) List(ctx context.Context) ([]models.Sale, error) {
	if e.all {
		return e.api.ListAllSales(ctx, e.session.Token())
	}
	return e.api.ListSales(ctx, e.session.Token())
}

func (e *saleEndpoint) Create(ctx context.Context, d models.SaleDraft) (models.Sale, error) {
	if e.all {
		return models.Sale{}, ErrReadOnly
	}
	return e.api.CreateSale(ctx, e.session.Token(), d)
}

func (e *saleEndpoint) Update(ctx context.Context, id int64, d models.SaleDraft) (models.Sale, error) {
	if e.all {
		return models.Sale{}, ErrReadOnly
	}
	return e.api.UpdateSale(ctx, e.session.Token(), id, d)
}

func (e *saleEndpoint) Delete(ctx context.Context, id int64) error {
	if e.all {
		return ErrReadOnly
	}
	return e.api.DeleteSale(ctx, e.session.Token(), id)
}

package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/client/media"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/shopspring/decimal"
)

// fakeAPI is an in-memory client.Client.
type fakeAPI struct {
	mu sync.Mutex

	token    string
	register client.RegisterReply
	me       *models.User

	crafts     []models.Craft
	categories []models.Category
	sales      []models.Sale
	nextID     int64

	lastImage *media.File
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) BaseURL() string { return "http://api.test" }

func (f *fakeAPI) id() int64 {
	f.nextID++
	return 100 + f.nextID
}

func (f *fakeAPI) Login(context.Context, models.Credentials) (string, error) {
	if f.token == "" {
		return "", &client.Failure{Status: 401, Message: "Credenciales inválidas"}
	}
	return f.token, nil
}

func (f *fakeAPI) Register(context.Context, models.Credentials) (client.RegisterReply, error) {
	return f.register, nil
}

func (f *fakeAPI) Me(context.Context, string) (models.User, error) {
	if f.me == nil {
		return models.User{}, client.ErrNotFound
	}
	return *f.me, nil
}

func (f *fakeAPI) ListCrafts(context.Context, string) ([]models.Craft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Craft(nil), f.crafts...), nil
}

func (f *fakeAPI) CreateCraft(_ context.Context, _ string, d models.CraftDraft, img *media.File) (models.Craft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastImage = img
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return models.Craft{}, &client.Failure{Status: 400, Message: "Precio inválido"}
	}
	c := models.Craft{ID: f.id(), Title: d.Title, Description: d.Description, Price: price, CategoryID: d.CategoryID}
	f.crafts = append(f.crafts, c)
	return c, nil
}

func (f *fakeAPI) UpdateCraft(_ context.Context, _ string, id int64, d models.CraftDraft, img *media.File) (models.Craft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastImage = img
	for i := range f.crafts {
		if f.crafts[i].ID == id {
			f.crafts[i].Title = d.Title
			return f.crafts[i], nil
		}
	}
	return models.Craft{}, client.ErrNotFound
}

func (f *fakeAPI) DeleteCraft(_ context.Context, _ string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.crafts {
		if f.crafts[i].ID == id {
			f.crafts = append(f.crafts[:i], f.crafts[i+1:]...)
			return nil
		}
	}
	return &client.Failure{Status: 404}
}

func (f *fakeAPI) ListCategories(context.Context, string) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Category(nil), f.categories...), nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, _ string, d models.CategoryDraft) (models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := models.Category{ID: f.id(), Title: d.Title, Description: d.Description}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, _ string, id int64, d models.CategoryDraft) (models.Category, error) {
	return models.Category{ID: id, Title: d.Title, Description: d.Description}, nil
}

func (f *fakeAPI) DeleteCategory(context.Context, string, int64) error { return nil }

func (f *fakeAPI) ListSales(context.Context, string) ([]models.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Sale(nil), f.sales...), nil
}

func (f *fakeAPI) ListAllSales(ctx context.Context, token string) ([]models.Sale, error) {
	return f.ListSales(ctx, token)
}

func (f *fakeAPI) CreateSale(_ context.Context, _ string, d models.SaleDraft) (models.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := models.Sale{ID: f.id(), CraftID: d.CraftID, Quantity: 2, TotalPrice: decimal.NewFromInt(20)}
	f.sales = append(f.sales, s)
	return s, nil
}

func (f *fakeAPI) UpdateSale(_ context.Context, _ string, id int64, _ models.SaleDraft) (models.Sale, error) {
	return models.Sale{ID: id}, nil
}

func (f *fakeAPI) DeleteSale(context.Context, string, int64) error { return nil }

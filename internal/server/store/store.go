// Package store is the in-memory storage of the development backend.
// Records are kept in insertion order; every method is safe for
// concurrent use.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/server/models"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// AnyOwner lets sale mutations skip the ownership check.
const AnyOwner int64 = 0

type Store struct {
	mu         sync.RWMutex
	users      []models.User
	categories []models.Category
	crafts     []models.Craft
	sales      []models.Sale
	lastID     int64
	now        func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// Users

// CreateUser stores u. A user is identified by nombre and telefono.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Nombre == u.Nombre && existing.Telefono == u.Telefono {
			return models.User{}, ErrAlreadyExists
		}
	}
	u.ID = s.nextID()
	u.CreatedAt = s.now().UTC()
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) UserByLogin(nombre, telefono string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Nombre == nombre && u.Telefono == telefono {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) User(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.users, id, func(u models.User) int64 { return u.ID }); i >= 0 {
		return s.users[i], nil
	}
	return models.User{}, ErrNotFound
}

// Categories

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) CreateCategory(c models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID()
	s.categories = append(s.categories, c)
	return c
}

func (s *Store) UpdateCategory(c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.categories, c.ID, categoryID)
	if i < 0 {
		return models.Category{}, ErrNotFound
	}
	s.categories[i] = c
	return c, nil
}

// DeleteCategory removes the category and detaches the crafts that used it.
func (s *Store) DeleteCategory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.categories, id, categoryID)
	if i < 0 {
		return ErrNotFound
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	for j := range s.crafts {
		if s.crafts[j].CategoryID == id {
			s.crafts[j].CategoryID = 0
		}
	}
	return nil
}

// Crafts

func (s *Store) Crafts() []models.Craft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Craft, 0, len(s.crafts))
	for _, c := range s.crafts {
		out = append(out, s.withCategory(c))
	}
	return out
}

func (s *Store) Craft(id int64) (models.Craft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.crafts, id, craftID); i >= 0 {
		return s.withCategory(s.crafts[i]), nil
	}
	return models.Craft{}, ErrNotFound
}

func (s *Store) CreateCraft(c models.Craft) (models.Craft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.CategoryID != 0 && indexOf(s.categories, c.CategoryID, categoryID) < 0 {
		return models.Craft{}, ErrNotFound
	}
	c.ID = s.nextID()
	c.Category = nil
	s.crafts = append(s.crafts, c)
	return s.withCategory(c), nil
}

// UpdateCraft replaces the craft with c.ID. An empty image keeps the
// current one.
func (s *Store) UpdateCraft(c models.Craft) (models.Craft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.crafts, c.ID, craftID)
	if i < 0 {
		return models.Craft{}, ErrNotFound
	}
	if c.CategoryID != 0 && indexOf(s.categories, c.CategoryID, categoryID) < 0 {
		return models.Craft{}, ErrNotFound
	}
	if c.Image == "" {
		c.Image = s.crafts[i].Image
	}
	c.Category = nil
	s.crafts[i] = c
	return s.withCategory(c), nil
}

func (s *Store) DeleteCraft(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.crafts, id, craftID)
	if i < 0 {
		return ErrNotFound
	}
	s.crafts = append(s.crafts[:i], s.crafts[i+1:]...)
	return nil
}

// Sales

// Sales returns the sales of userID, or every sale for AnyOwner.
func (s *Store) Sales(userID int64) []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sale, 0)
	for _, sale := range s.sales {
		if userID == AnyOwner || sale.UserID == userID {
			out = append(out, s.decorate(sale))
		}
	}
	return out
}

// CreateSale sells quantity units of a craft to userID. The total is
// price times quantity and the craft stock is reduced.
func (s *Store) CreateSale(userID, craft int64, quantity int) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return models.Sale{}, ErrInvalidQuantity
	}
	ci := indexOf(s.crafts, craft, craftID)
	if ci < 0 {
		return models.Sale{}, ErrNotFound
	}
	if s.crafts[ci].Stock < quantity {
		return models.Sale{}, ErrInsufficientStock
	}

	s.crafts[ci].Stock -= quantity
	sale := models.Sale{
		ID:         s.nextID(),
		UserID:     userID,
		CraftID:    craft,
		CraftName:  s.crafts[ci].Title,
		Quantity:   quantity,
		TotalPrice: s.crafts[ci].Price.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:  s.now().UTC(),
	}
	s.sales = append(s.sales, sale)
	return s.decorate(sale), nil
}

// UpdateSale changes the quantity of a sale owned by owner, moving the
// difference in and out of the craft stock.
func (s *Store) UpdateSale(id, owner int64, quantity int) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return models.Sale{}, ErrInvalidQuantity
	}
	i := s.ownedSale(id, owner)
	if i < 0 {
		return models.Sale{}, ErrNotFound
	}
	sale := s.sales[i]

	if ci := indexOf(s.crafts, sale.CraftID, craftID); ci >= 0 {
		delta := quantity - sale.Quantity
		if s.crafts[ci].Stock < delta {
			return models.Sale{}, ErrInsufficientStock
		}
		s.crafts[ci].Stock -= delta
		sale.TotalPrice = s.crafts[ci].Price.Mul(decimal.NewFromInt(int64(quantity)))
	}
	sale.Quantity = quantity
	s.sales[i] = sale
	return s.decorate(sale), nil
}

// DeleteSale removes a sale owned by owner and returns its units to stock.
func (s *Store) DeleteSale(id, owner int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ownedSale(id, owner)
	if i < 0 {
		return ErrNotFound
	}
	sale := s.sales[i]
	if ci := indexOf(s.crafts, sale.CraftID, craftID); ci >= 0 {
		s.crafts[ci].Stock += sale.Quantity
	}
	s.sales = append(s.sales[:i], s.sales[i+1:]...)
	return nil
}

func (s *Store) ownedSale(id, owner int64) int {
	i := indexOf(s.sales, id, saleID)
	if i < 0 || (owner != AnyOwner && s.sales[i].UserID != owner) {
		return -1
	}
	return i
}

// withCategory and decorate expect the lock to be held.
func (s *Store) withCategory(c models.Craft) models.Craft {
	if i := indexOf(s.categories, c.CategoryID, categoryID); c.CategoryID != 0 && i >= 0 {
		c.Category = &models.CategoryRef{Title: s.categories[i].Title}
	}
	return c
}

func (s *Store) decorate(sale models.Sale) models.Sale {
	if i := indexOf(s.crafts, sale.CraftID, craftID); i >= 0 {
		sale.CraftName = s.crafts[i].Title
	}
	if i := indexOf(s.users, sale.UserID, func(u models.User) int64 { return u.ID }); i >= 0 {
		sale.User = &models.Buyer{Nombre: s.users[i].Nombre}
	}
	return sale
}

func categoryID(c models.Category) int64 { return c.ID }
func craftID(c models.Craft) int64       { return c.ID }
func saleID(s models.Sale) int64         { return s.ID }

func indexOf[T any](items []T, id int64, key func(T) int64) int {
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}

// Package users registers and authenticates storefront accounts.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/dmitrijs2005/craftstore/internal/server/auth"
	"github.com/dmitrijs2005/craftstore/internal/server/config"
	"github.com/dmitrijs2005/craftstore/internal/server/models"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("user already exists")
	ErrValidation    = errors.New("nombre, telefono and password are required")
)

type Service struct {
	store     *store.Store
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(st *store.Store, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		store:     st,
		logger:    logger,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
	}
}

// Register creates a Cliente account. It does not log the user in.
func (s *Service) Register(ctx context.Context, nombre, telefono, password string) (*models.User, error) {
	return s.create(ctx, nombre, telefono, password, models.RoleClient)
}

// SeedAdmin creates the administrator account unless it already exists.
func (s *Service) SeedAdmin(ctx context.Context, nombre, telefono, password string) error {
	_, err := s.create(ctx, nombre, telefono, password, models.RoleAdmin)
	if errors.Is(err, ErrAlreadyExists) {
		return nil
	}
	return err
}

func (s *Service) create(ctx context.Context, nombre, telefono, password, rol string) (*models.User, error) {
	if nombre == "" || telefono == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(models.User{Nombre: nombre, Telefono: telefono, Rol: rol, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "id", user.ID, "rol", rol)
	return &user, nil
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(ctx context.Context, nombre, telefono, password string) (string, error) {
	user, err := s.store.UserByLogin(nombre, telefono)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Rol, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	s.logger.Info(ctx, "user logged in", "id", user.ID)
	return token, nil
}

func (s *Service) Get(_ context.Context, id int64) (*models.User, error) {
	user, err := s.store.User(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

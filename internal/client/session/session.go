// Package session logs users in and out of the storefront API.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/craftstore/internal/client/client"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/common"
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when a claim lookup is attempted on an empty token.
var ErrNoToken = errors.New("no token")

// RegisterResult is the outcome of a successful registration. Session is
// nil when the backend only confirmed the account; the user then has to
// log in.
type RegisterResult struct {
	Session *models.Session
}

// Service is the authentication surface used by the CLI.
type Service interface {
	Login(ctx context.Context, nombre, telefono string, password []byte) (*models.Session, error)
	Register(ctx context.Context, nombre, telefono string, password []byte) (*RegisterResult, error)
	Logout(s *models.Session)
}

type service struct {
	api    client.AuthAPI
	logger logging.Logger
}

func NewService(api client.AuthAPI, logger logging.Logger) Service {
	return &service{api: api, logger: logger}
}

// Login exchanges credentials for a token and resolves the user profile.
// The password slice is wiped before returning.
func (s *service) Login(ctx context.Context, nombre, telefono string, password []byte) (*models.Session, error) {
	defer common.WipeBytes(password)

	token, err := s.api.Login(ctx, models.Credentials{Nombre: nombre, Telefono: telefono, Password: string(password)})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return s.establish(ctx, token, nombre, telefono), nil
}

func (s *service) Register(ctx context.Context, nombre, telefono string, password []byte) (*RegisterResult, error) {
	defer common.WipeBytes(password)

	reply, err := s.api.Register(ctx, models.Credentials{Nombre: nombre, Telefono: telefono, Password: string(password)})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if reply.Token == "" {
		s.logger.Info(ctx, "account created, login required", "nombre", nombre)
		return &RegisterResult{}, nil
	}
	return &RegisterResult{Session: s.establish(ctx, reply.Token, nombre, telefono)}, nil
}

// Logout wipes the token. There is no server side revocation.
func (s *service) Logout(sess *models.Session) {
	sess.Discard()
}

// establish builds the session for token. The profile comes from /me; when
// that fails the role is read from the token claims and the typed
// credentials stand in for the profile.
func (s *service) establish(ctx context.Context, token, nombre, telefono string) *models.Session {
	user, err := s.api.Me(ctx, token)
	if err == nil {
		return models.NewSession(token, user)
	}
	s.logger.Warn(ctx, "profile lookup failed", "err", err)

	user = models.User{Nombre: nombre, Telefono: telefono}
	role, claimErr := RoleFromToken(token)
	if claimErr != nil {
		s.logger.Warn(ctx, "role unavailable", "err", claimErr)
	}
	user.Rol = role
	return models.NewSession(token, user)
}

// RoleFromToken reads the rol (or role) claim of a JWT without verifying
// its signature. The client never holds the signing key.
func RoleFromToken(token string) (models.Role, error) {
	if token == "" {
		return "", ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	for _, key := range []string{"rol", "role"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return models.ParseRole(v), nil
		}
	}
	return "", fmt.Errorf("token has no role claim")
}

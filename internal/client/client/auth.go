package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

type authReply struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	errorBody
}

// Login succeeds only for a 2xx answer carrying a non-empty token.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	r, err := jsonRequest(http.MethodPost, "/api/users/login", "", creds)
	if err != nil {
		return "", err
	}

	var reply authReply
	if err := c.do(ctx, r, &reply); err != nil {
		return "", err
	}
	if reply.Token == "" {
		return "", &Failure{Status: http.StatusOK, Message: reply.text()}
	}
	return reply.Token, nil
}

// Register succeeds for a 2xx answer carrying either a token or success=true.
func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (RegisterReply, error) {
	r, err := jsonRequest(http.MethodPost, "/api/users/register", "", creds)
	if err != nil {
		return RegisterReply{}, err
	}

	var reply authReply
	if err := c.do(ctx, r, &reply); err != nil {
		return RegisterReply{}, err
	}
	if reply.Token == "" && !reply.Success {
		return RegisterReply{}, &Failure{Status: http.StatusOK, Message: reply.text()}
	}
	return RegisterReply{Token: reply.Token, Success: reply.Success || reply.Token != ""}, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (models.User, error) {
	var u models.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/users/me", token: token}, &u)
	u.Rol = models.ParseRole(string(u.Rol))
	return u, err
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

const salesPath = "/api/sales"

type createSaleBody struct {
	CraftID  int64 `json:"craftId"`
	Quantity int   `json:"quantity"`
}

type updateSaleBody struct {
	Quantity int `json:"quantity"`
}

// saleReply is the {sale} wrapper used by create and update.
type saleReply struct {
	Sale *models.Sale `json:"sale"`
}

func (c *HTTPClient) ListSales(ctx context.Context, token string) ([]models.Sale, error) {
	return c.listSales(ctx, salesPath, token)
}

// ListAllSales returns every user's sales; administrators only.
func (c *HTTPClient) ListAllSales(ctx context.Context, token string) ([]models.Sale, error) {
	return c.listSales(ctx, salesPath+"/all", token)
}

func (c *HTTPClient) listSales(ctx context.Context, path, token string) ([]models.Sale, error) {
	var sales []models.Sale
	if err := c.do(ctx, request{method: http.MethodGet, path: path, token: token}, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *HTTPClient) CreateSale(ctx context.Context, token string, d models.SaleDraft) (models.Sale, error) {
	qty, err := parseQuantity(d.Quantity)
	if err != nil {
		return models.Sale{}, err
	}
	return c.sendSale(ctx, http.MethodPost, salesPath, token, createSaleBody{CraftID: d.CraftID, Quantity: qty})
}

// UpdateSale only changes the quantity; the craft of a sale is fixed.
func (c *HTTPClient) UpdateSale(ctx context.Context, token string, id int64, d models.SaleDraft) (models.Sale, error) {
	qty, err := parseQuantity(d.Quantity)
	if err != nil {
		return models.Sale{}, err
	}
	return c.sendSale(ctx, http.MethodPut, resourcePath(salesPath, id), token, updateSaleBody{Quantity: qty})
}

func (c *HTTPClient) DeleteSale(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath(salesPath, id), token: token}, nil)
}

func (c *HTTPClient) sendSale(ctx context.Context, method, path, token string, payload any) (models.Sale, error) {
	r, err := jsonRequest(method, path, token, payload)
	if err != nil {
		return models.Sale{}, err
	}
	var reply saleReply
	if err := c.do(ctx, r, &reply); err != nil {
		return models.Sale{}, err
	}
	if reply.Sale == nil {
		return models.Sale{}, fmt.Errorf("%s %s: %w: no sale in reply", method, path, ErrMalformedResponse)
	}
	return *reply.Sale, nil
}

func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("quantity %q: %w", s, err)
	}
	return qty, nil
}

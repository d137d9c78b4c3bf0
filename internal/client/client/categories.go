package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

const categoriesPath = "/api/categories"

func (c *HTTPClient) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, request{method: http.MethodGet, path: categoriesPath, token: token}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, token string, d models.CategoryDraft) (models.Category, error) {
	return c.sendCategory(ctx, http.MethodPost, categoriesPath, token, d)
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, token string, id int64, d models.CategoryDraft) (models.Category, error) {
	return c.sendCategory(ctx, http.MethodPut, resourcePath(categoriesPath, id), token, d)
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath(categoriesPath, id), token: token}, nil)
}

func (c *HTTPClient) sendCategory(ctx context.Context, method, path, token string, d models.CategoryDraft) (models.Category, error) {
	r, err := jsonRequest(method, path, token, d)
	if err != nil {
		return models.Category{}, err
	}
	var category models.Category
	if err := c.do(ctx, r, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

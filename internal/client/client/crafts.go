package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/dmitrijs2005/craftstore/internal/client/media"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
)

const craftsPath = "/api/crafts"

func (c *HTTPClient) ListCrafts(ctx context.Context, token string) ([]models.Craft, error) {
	var crafts []models.Craft
	if err := c.do(ctx, request{method: http.MethodGet, path: craftsPath, token: token}, &crafts); err != nil {
		return nil, err
	}
	return crafts, nil
}

func (c *HTTPClient) CreateCraft(ctx context.Context, token string, d models.CraftDraft, image *media.File) (models.Craft, error) {
	return c.sendCraft(ctx, http.MethodPost, craftsPath, token, d, image)
}

func (c *HTTPClient) UpdateCraft(ctx context.Context, token string, id int64, d models.CraftDraft, image *media.File) (models.Craft, error) {
	return c.sendCraft(ctx, http.MethodPut, resourcePath(craftsPath, id), token, d, image)
}

func (c *HTTPClient) DeleteCraft(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath(craftsPath, id), token: token}, nil)
}

func (c *HTTPClient) sendCraft(ctx context.Context, method, path, token string, d models.CraftDraft, image *media.File) (models.Craft, error) {
	body, contentType, err := craftForm(d, image)
	if err != nil {
		return models.Craft{}, err
	}

	var craft models.Craft
	r := request{method: method, path: path, token: token, body: body, contentType: contentType}
	if err := c.do(ctx, r, &craft); err != nil {
		return models.Craft{}, err
	}
	return craft, nil
}

// craftForm encodes the draft as multipart/form-data. The image part is
// only written when a freshly picked file is given.
func craftForm(d models.CraftDraft, image *media.File) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"title", d.Title},
		{"description", d.Description},
		{"price", d.Price},
		{"stock", d.Stock},
	}
	if d.CategoryID != 0 {
		fields = append(fields, struct{ name, value string }{"categoryId", strconv.FormatInt(d.CategoryID, 10)})
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("encode craft form: %w", err)
		}
	}

	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Name))
		h.Set("Content-Type", image.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("encode craft image: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", fmt.Errorf("encode craft image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("encode craft form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

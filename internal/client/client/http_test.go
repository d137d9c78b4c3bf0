package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/craftstore/internal/client/media"
	"github.com/dmitrijs2005/craftstore/internal/client/models"
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL+"/", 0, logging.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	creds := models.Credentials{Nombre: "Ana", Telefono: "555", Password: "x"}

	t.Run("token in 200", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/users/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("Authorization"))

			var got models.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, creds, got)

			writeJSON(w, http.StatusOK, map[string]string{"token": "abc"})
		})

		token, err := c.Login(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	})

	t.Run("200 without token is a failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"message": "Credenciales inválidas"})
		})

		_, err := c.Login(ctx, creds)
		require.Error(t, err)
		assert.Equal(t, "Credenciales inválidas", Message(err, "fallback"))
	})

	t.Run("token with error status is a failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"token": "abc", "error": "Usuario no encontrado"})
		})

		_, err := c.Login(ctx, creds)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, "Usuario no encontrado", Message(err, "fallback"))
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		body    map[string]any
		want    RegisterReply
		wantErr bool
	}{
		{name: "success flag", status: http.StatusCreated, body: map[string]any{"success": true}, want: RegisterReply{Success: true}},
		{name: "token", status: http.StatusOK, body: map[string]any{"token": "t1"}, want: RegisterReply{Token: "t1", Success: true}},
		{name: "neither", status: http.StatusOK, body: map[string]any{"message": "ya existe"}, wantErr: true},
		{name: "conflict", status: http.StatusConflict, body: map[string]any{"error": "ya existe"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/users/register", r.URL.Path)
				writeJSON(w, tt.status, tt.body)
			})

			got, err := c.Register(ctx, models.Credentials{Nombre: "Ana"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "ya existe", Message(err, "Registro fallido"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMe_SendsBearerAndRequestID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)
		writeJSON(w, http.StatusOK, map[string]string{"nombre": "Ana", "telefono": "555", "rol": "cliente"})
	})

	u, err := c.Me(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, models.User{Nombre: "Ana", Telefono: "555", Rol: models.RoleClient}, u)
}

func TestCreateCraft_Multipart(t *testing.T) {
	img := &media.File{Name: "vase.png", ContentType: "image/png", Data: []byte("png-bytes")}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/crafts", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Vase", r.FormValue("title"))
		assert.Equal(t, "10", r.FormValue("price"))
		assert.Equal(t, "2", r.FormValue("stock"))
		assert.Equal(t, "1", r.FormValue("categoryId"))

		f, fh, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "vase.png", fh.Filename)
		assert.Equal(t, "png-bytes", string(data))

		writeJSON(w, http.StatusCreated, map[string]any{"id": 7, "title": "Vase", "price": 10, "stock": 2, "categoryId": 1, "image": "/uploads/vase.png"})
	})

	craft, err := c.CreateCraft(context.Background(), "abc", models.CraftDraft{Title: "Vase", Price: "10", Stock: "2", CategoryID: 1}, img)
	require.NoError(t, err)
	assert.Equal(t, int64(7), craft.ID)
	assert.True(t, craft.Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "/uploads/vase.png", craft.Image)
}

func TestUpdateCraft_WithoutImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/crafts/7", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		assert.ErrorIs(t, err, http.ErrMissingFile)
		assert.Empty(t, r.MultipartForm.Value["categoryId"])
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "title": r.FormValue("title")})
	})

	craft, err := c.UpdateCraft(context.Background(), "abc", 7, models.CraftDraft{Title: "Jarrón"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jarrón", craft.Title)
}

func TestCategories_CRUD(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/categories":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "title": "Barro"}, {"id": 2, "title": "Textil"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/categories":
			var d models.CategoryDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&d))
			writeJSON(w, http.StatusCreated, map[string]any{"id": 3, "title": d.Title, "description": d.Description})
		case r.Method == http.MethodPut && r.URL.Path == "/api/categories/3":
			writeJSON(w, http.StatusOK, map[string]any{"id": 3, "title": "Madera tallada"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/categories/3":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	list, err := c.ListCategories(ctx, "abc")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	created, err := c.CreateCategory(ctx, "abc", models.CategoryDraft{Title: "Madera", Description: "Tallas"})
	require.NoError(t, err)
	assert.Equal(t, models.Category{ID: 3, Title: "Madera", Description: "Tallas"}, created)

	updated, err := c.UpdateCategory(ctx, "abc", 3, models.CategoryDraft{Title: "Madera tallada"})
	require.NoError(t, err)
	assert.Equal(t, "Madera tallada", updated.Title)

	require.NoError(t, c.DeleteCategory(ctx, "abc", 3))
}

func TestSales_WrapperAndBodies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/sales/all":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "craftName": "Vase", "User": map[string]any{"nombre": "Ana"}}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/sales":
			assert.Equal(t, map[string]any{"craftId": float64(7), "quantity": float64(2)}, body)
			writeJSON(w, http.StatusCreated, map[string]any{"sale": map[string]any{"id": 9, "craftId": 7, "quantity": 2, "totalPrice": "20"}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/sales/9":
			assert.Equal(t, map[string]any{"quantity": float64(3)}, body)
			writeJSON(w, http.StatusOK, map[string]any{"sale": map[string]any{"id": 9, "craftId": 7, "quantity": 3, "totalPrice": "30"}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/sales/10":
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Stock insuficiente"})
		}
	})
	ctx := context.Background()

	all, err := c.ListAllSales(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana", all[0].BuyerName())

	sale, err := c.CreateSale(ctx, "abc", models.SaleDraft{CraftID: 7, Quantity: " 2 "})
	require.NoError(t, err)
	assert.Equal(t, int64(9), sale.ID)
	assert.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(20)))

	sale, err = c.UpdateSale(ctx, "abc", 9, models.SaleDraft{CraftID: 7, Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, 3, sale.Quantity)

	_, err = c.UpdateSale(ctx, "abc", 10, models.SaleDraft{Quantity: "1"})
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = c.CreateSale(ctx, "abc", models.SaleDraft{CraftID: 7, Quantity: "dos"})
	assert.Error(t, err)

	err = c.DeleteSale(ctx, "abc", 99)
	assert.Equal(t, "Stock insuficiente", Message(err, ""))
}

func TestDo_ErrorClasses(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		c := NewHTTPClient(url, 0, logging.Nop())
		_, err := c.ListCrafts(ctx, "abc")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, "fallback", Message(err, "fallback"))
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		err := c.DeleteCraft(ctx, "abc", 1)
		assert.ErrorIs(t, err, ErrNotFound)

		var f *Failure
		require.True(t, errors.As(err, &f))
		assert.Equal(t, http.StatusNotFound, f.Status)
		assert.Equal(t, "request failed with status 404", f.Error())
	})

	t.Run("forbidden", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]string{"message": "Acceso denegado"})
		})
		_, err := c.ListAllSales(ctx, "abc")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "Acceso denegado")
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":`))
		})
		_, err := c.ListCategories(ctx, "abc")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("server error is not a sentinel", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.ListSales(ctx, "abc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestBaseURL_TrimsSlash(t *testing.T) {
	c := NewHTTPClient("http://h:3000///", 0, logging.Nop())
	assert.Equal(t, "http://h:3000", c.BaseURL())
}

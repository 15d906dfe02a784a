package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbook/internal/config"
	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/router"
	"stockbook/internal/storage"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{
		Env:                "development",
		KeyPrefix:          "ss",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		DriveAPIURL:        "http://drive.invalid",
		DriveUploadURL:     "http://drive.invalid",
		DriveFileName:      "stockbook_backup.json",
	}
	return router.New(cfg, storage.NewMemory())
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/register", "", dto.RegisterRequest{
		Email: email, Name: "Owner", Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestRouter()
	register(t, r, "owner@example.com")

	// duplicate registration rejected
	w := doJSON(t, r, http.MethodPost, "/v1/auth/register", "", dto.RegisterRequest{
		Email: "owner@example.com", Name: "Owner", Password: "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// wrong password rejected
	w = doJSON(t, r, http.MethodPost, "/v1/auth/login", "", dto.LoginRequest{
		Email: "owner@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/auth/login", "", dto.LoginRequest{
		Email: "owner@example.com", Password: "secret1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductCRUDAndIdentityIsolation(t *testing.T) {
	r := newTestRouter()
	token := register(t, r, "owner@example.com")

	w := doJSON(t, r, http.MethodPost, "/v1/products", token, dto.CreateProductRequest{
		Name: "Tea Pack", Category: "Grocery",
		CostPrice: decimal.NewFromInt(80), UnitPrice: decimal.NewFromInt(120), MinStock: 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	// owner sees the seed product plus the new one
	w = doJSON(t, r, http.MethodGet, "/v1/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	// an unauthenticated caller lands in the guest dataset: seed only
	w = doJSON(t, r, http.MethodGet, "/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "Sample Item", products[0].Name)

	// patch only the name
	w = doJSON(t, r, http.MethodPut, "/v1/products/"+created.ID, token,
		map[string]string{"name": "Premium Tea Pack"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Premium Tea Pack", updated.Name)
	assert.Equal(t, "Grocery", updated.Category)
	assert.True(t, updated.UnitPrice.Equal(decimal.NewFromInt(120)))

	// updating a missing id is a 404
	w = doJSON(t, r, http.MethodPut, "/v1/products/ghost", token,
		map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// delete, then re-delete: both succeed (idempotent)
	w = doJSON(t, r, http.MethodDelete, "/v1/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/v1/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMovementFlowAndReports(t *testing.T) {
	r := newTestRouter()
	token := register(t, r, "shop@example.com")

	w := doJSON(t, r, http.MethodPost, "/v1/products", token, dto.CreateProductRequest{
		Name: "Tea Pack", Category: "Grocery",
		CostPrice: decimal.NewFromInt(80), UnitPrice: decimal.NewFromInt(120), MinStock: 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var p model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

	// receipt
	w = doJSON(t, r, http.MethodPost, "/v1/logs", token, dto.CreateLogRequest{
		ProductID: p.ID, Quantity: 10, Type: model.MovementIn,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// sale, defaults to PENDING
	w = doJSON(t, r, http.MethodPost, "/v1/logs", token, dto.CreateLogRequest{
		ProductID: p.ID, Quantity: 3, Type: model.MovementOut,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var sale model.StockLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Equal(t, model.PaymentPending, sale.PaymentStatus)

	// overselling is rejected uniformly
	w = doJSON(t, r, http.MethodPost, "/v1/logs", token, dto.CreateLogRequest{
		ProductID: p.ID, Quantity: 99, Type: model.MovementOut,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// balance endpoint
	w = doJSON(t, r, http.MethodGet, "/v1/products/"+p.ID+"/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bal dto.ProductBalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bal))
	assert.Equal(t, 7, bal.Balance)
	assert.False(t, bal.LowStock)

	// summary before and after mark-paid
	w = doJSON(t, r, http.MethodGet, "/v1/reports/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary dto.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.InventoryValue.Equal(decimal.NewFromInt(560)))
	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(360)))
	assert.True(t, summary.Profit.Equal(decimal.NewFromInt(120)))
	assert.True(t, summary.PendingReceivables.Equal(decimal.NewFromInt(360)))

	w = doJSON(t, r, http.MethodPatch, "/v1/logs/"+sale.ID+"/paid", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/v1/reports/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.PendingReceivables.IsZero())
	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(360)))
}

func TestExportImportEndpoints(t *testing.T) {
	r := newTestRouter()
	token := register(t, r, "backup@example.com")

	w := doJSON(t, r, http.MethodPost, "/v1/customers", token, dto.CreateCustomerRequest{
		Name: "Asha", Phone: "111",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc model.ExportDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Len(t, doc.Customers, 1)
	assert.Equal(t, "backup@example.com", doc.Owner)

	// import the export into a different account
	other := register(t, r, "second@example.com")
	req := httptest.NewRequest(http.MethodPost, "/v1/import", bytes.NewReader(w.Body.Bytes()))
	req.Header.Set("Authorization", "Bearer "+other)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	w = doJSON(t, r, http.MethodGet, "/v1/customers", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var customers []model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Asha", customers[0].Name)

	// garbage import is a 400
	req = httptest.NewRequest(http.MethodPost, "/v1/import", bytes.NewReader([]byte("nonsense")))
	req.Header.Set("Authorization", "Bearer "+other)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

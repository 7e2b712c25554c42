package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TheCodister/badminton-shop-api/app/configs"
	"github.com/TheCodister/badminton-shop-api/app/models/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	router, err := NewRouter(db, configs.ENV{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
	})
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func registerAndLogin(t *testing.T, router http.Handler, email string) (userID, accessToken string) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]string{
		"username": "demo",
		"email":    email,
		"phone":    "0123456789",
		"password": "secret123",
		"address":  "1 Shuttle Street",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"mail":     email,
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	return payload["user_id"].(string), payload["access_token"].(string)
}

func racketPayload(name string, price int64, balance string) map[string]interface{} {
	return map[string]interface{}{
		"product_name": name,
		"image_url":    "/images/" + name + ".jpg",
		"price":        price,
		"brand":        "YONEX",
		"status":       "AVAILABLE",
		"stock":        5,
		"racket": map[string]interface{}{
			"balance":   balance,
			"stiffness": "STIFF",
			"weight":    "4U",
		},
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "demo@test.local")

	rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]string{
		"username": "other",
		"email":    "demo@test.local",
		"phone":    "0987654321",
		"password": "different",
		"address":  "2 Shuttle Street",
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// the first registration still works
	rec = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"mail":     "demo@test.local",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "demo@test.local")

	wrongPass := doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"mail":     "demo@test.local",
		"password": "wrong",
	}, nil)
	unknownMail := doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"mail":     "ghost@test.local",
		"password": "wrong",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownMail.Code)
	require.Equal(t, decodeBody(t, wrongPass)["message"], decodeBody(t, unknownMail)["message"])
}

func TestVerifyToken(t *testing.T) {
	router := newTestRouter(t)
	userID, accessToken := registerAndLogin(t, router, "demo@test.local")

	rec := doJSON(t, router, http.MethodGet, "/auth/verify", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, userID, decodeBody(t, rec)["userId"])

	rec = doJSON(t, router, http.MethodGet, "/auth/verify", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/auth/verify", nil, map[string]string{
		"Authorization": "Bearer garbage",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRacketListingAndConversion(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/rackets", racketPayload("Astrox 99", 240000, "HEAD_HEAVY"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/rackets", racketPayload("Arcsaber 11", 480000, "EVEN"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/rackets", racketPayload("Thruster K", 720000, "HEAD_LIGHT"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/rackets?balance=HEAD_HEAVY,EVEN&price=asc", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.EqualValues(t, 2, payload["total"])
	data := payload["data"].([]interface{})
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	product := first["product"].(map[string]interface{})
	// stored 240000 VND shows as 10.00 USD
	require.EqualValues(t, 10, product["price"])
	require.Equal(t, "HEAD_HEAVY", first["balance"])
}

func TestRacketPagination(t *testing.T) {
	router := newTestRouter(t)

	for i := 1; i <= 5; i++ {
		rec := doJSON(t, router, http.MethodPost, "/rackets",
			racketPayload(fmt.Sprintf("Racket %d", i), int64(i)*240000, "EVEN"), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/rackets?price=asc&limit=2&page=2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.EqualValues(t, 5, payload["total"])
	data := payload["data"].([]interface{})
	require.Len(t, data, 2)

	prices := []float64{
		data[0].(map[string]interface{})["product"].(map[string]interface{})["price"].(float64),
		data[1].(map[string]interface{})["product"].(map[string]interface{})["price"].(float64),
	}
	require.Equal(t, []float64{30, 40}, prices)
}

func TestRacketBadLimit(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/rackets?limit=abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRacketGetMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/rackets/does-not-exist", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShuttlecockBadSpeed(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/shuttlecocks?speed=fast", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductsListingWithType(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/rackets", racketPayload("Astrox 99", 240000, "HEAD_HEAVY"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/products?search=astrox", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "racket", products[0]["product_type"])
	require.EqualValues(t, 10, products[0]["price"])
}

func TestCartLifecycle(t *testing.T) {
	router := newTestRouter(t)
	userID, _ := registerAndLogin(t, router, "demo@test.local")

	rec := doJSON(t, router, http.MethodPost, "/rackets", racketPayload("Astrox 99", 240000, "HEAD_HEAVY"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	productID := decodeBody(t, rec)["product_id"].(string)

	// no cart yet: null body with success status
	rec = doJSON(t, router, http.MethodGet, "/shoppingcart/"+userID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	// first add creates the cart and the line item
	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/"+userID+"/"+productID, map[string]int{"quantity": 2}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.EqualValues(t, 2, decodeBody(t, rec)["quantity"])

	// second add increments the same row
	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/"+userID+"/"+productID, map[string]int{"quantity": 3}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 5, decodeBody(t, rec)["quantity"])

	rec = doJSON(t, router, http.MethodGet, "/shoppingcart/"+userID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeBody(t, rec)
	items := cart["cart_items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	require.EqualValues(t, 5, item["quantity"])
	require.EqualValues(t, 10, item["product"].(map[string]interface{})["price"])

	// replace quantity outright
	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/"+userID+"/"+productID+"/7", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 7, decodeBody(t, rec)["quantity"])

	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/"+userID+"/"+productID+"/abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// clearing keeps the cart row
	rec = doJSON(t, router, http.MethodDelete, "/shoppingcart/"+userID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/shoppingcart/"+userID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeBody(t, rec)
	require.NotNil(t, cart)
	require.Empty(t, cart["cart_items"])
}

func TestCartNotFoundSignals(t *testing.T) {
	router := newTestRouter(t)
	userID, _ := registerAndLogin(t, router, "demo@test.local")

	rec := doJSON(t, router, http.MethodPost, "/rackets", racketPayload("Astrox 99", 240000, "HEAD_HEAVY"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	productID := decodeBody(t, rec)["product_id"].(string)

	// unknown customer and unknown product on add
	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/nobody/"+productID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/"+userID+"/nothing", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// set/remove/clear require an existing cart
	rec = doJSON(t, router, http.MethodPost, "/shoppingcart/"+userID+"/"+productID+"/3", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, router, http.MethodDelete, "/shoppingcart/"+userID+"/"+productID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, router, http.MethodDelete, "/shoppingcart/"+userID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRacketBulkCreate(t *testing.T) {
	router := newTestRouter(t)

	payload := []map[string]interface{}{
		racketPayload("Astrox 99", 240000, "HEAD_HEAVY"),
		racketPayload("Arcsaber 11", 480000, "EVEN"),
	}
	rec := doJSON(t, router, http.MethodPost, "/rackets/bulk", payload, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created, 2)

	rec = doJSON(t, router, http.MethodGet, "/rackets", nil, nil)
	require.EqualValues(t, 2, decodeBody(t, rec)["total"])
}

func TestRacketBulkCreateRejectsNonArray(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/rackets/bulk", racketPayload("Astrox", 240000, "EVEN"), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

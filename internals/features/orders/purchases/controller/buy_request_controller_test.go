package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "bukuku_backend/internals/databases"
	purchaseRoute "bukuku_backend/internals/features/orders/purchases/route"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.MigrateAll(db))

	app := fiber.New()
	purchaseRoute.PurchaseRoutes(app, db)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func listSells(t *testing.T, app *fiber.App) []map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sells", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var sells []map[string]any
	require.NoError(t, json.Unmarshal(raw, &sells))
	return sells
}

func TestBuyBook(t *testing.T) {
	app := newTestApp(t)

	// id buku & reader tidak perlu ada di tabel mana pun
	resp := postJSON(t, app, "/api/buy-book", `{"book_id_list":[1,2,3],"reader_id":"r1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "success", body["status"])

	sells := listSells(t, app)
	require.Len(t, sells, 1)
	require.Equal(t, "r1", sells[0]["reader_id"])
	require.Equal(t, []any{float64(1), float64(2), float64(3)}, sells[0]["book_id_list"])
}

func TestBuyBookMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/buy-book", `{"reader_id":"r1"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.Empty(t, listSells(t, app))
}

func TestSellsAppendOnly(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/buy-book", `{"book_id_list":[7],"reader_id":"r1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = postJSON(t, app, "/api/buy-book", `{"book_id_list":[8,9],"reader_id":"r2"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sells := listSells(t, app)
	require.Len(t, sells, 2)
	require.Equal(t, "r1", sells[0]["reader_id"])
	require.Equal(t, "r2", sells[1]["reader_id"])
}

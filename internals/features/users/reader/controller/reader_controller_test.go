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
	readerRoute "bukuku_backend/internals/features/users/reader/route"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.MigrateAll(db))

	app := fiber.New()
	readerRoute.ReaderRoutes(app, db)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestReaderSignupAndSignin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/reader-signup",
		`{"name":"Dewi","email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Signup successful", decodeMap(t, resp)["message"])

	resp = postJSON(t, app, "/reader-signin",
		`{"email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	require.Equal(t, "Login successful", body["message"])
	require.Equal(t, "Dewi", body["name"])
	require.NotEmpty(t, body["id"])
}

func TestReaderSignupDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/reader-signup",
		`{"name":"Dewi","email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/reader-signup",
		`{"name":"Dewi Kedua","email":"dewi@example.com","password":"lainlagi"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Email already registered", decodeMap(t, resp)["message"])
}

func TestReaderSigninInvalidCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/reader-signup",
		`{"name":"Dewi","email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// password salah
	resp = postJSON(t, app, "/reader-signin",
		`{"email":"dewi@example.com","password":"salah"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// email tidak terdaftar
	resp = postJSON(t, app, "/reader-signin",
		`{"email":"ghost@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReaderListHidesPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/reader-signup",
		`{"name":"Dewi","email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getJSON(t, app, "/readers")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var readers []map[string]any
	require.NoError(t, json.Unmarshal(raw, &readers))
	require.Len(t, readers, 1)
	require.Equal(t, "dewi@example.com", readers[0]["email"])
	require.NotContains(t, readers[0], "password")
}

func TestGetReaderByID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/reader-signup",
		`{"name":"Dewi","email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/reader-signin",
		`{"email":"dewi@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id := decodeMap(t, resp)["id"].(string)

	resp = getJSON(t, app, "/api/get-reader/"+id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Dewi", decodeMap(t, resp)["name"])

	resp = getJSON(t, app, "/api/get-reader/bukan-uuid")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

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
	authorRoute "bukuku_backend/internals/features/users/author/route"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.MigrateAll(db))

	app := fiber.New()
	authorRoute.AuthorRoutes(app, db)
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

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAuthorSignupAndSignin(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/author-signup",
		`{"name":"Pram","email":"pram@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Signup successful", decodeMap(t, resp)["message"])

	resp = postJSON(t, app, "/author-signin",
		`{"email":"pram@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	require.Equal(t, "Login successful", body["message"])
	require.Equal(t, "Pram", body["name"])
	require.NotEmpty(t, body["id"])
}

func TestAuthorSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/author-signup",
		`{"name":"Pram","email":"pram@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/author-signup",
		`{"name":"Pram Lain","email":"pram@example.com","password":"bedabeda"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthorSigninWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/author-signup",
		`{"name":"Pram","email":"pram@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/author-signin",
		`{"email":"pram@example.com","password":"salah"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorList(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/author-signup",
		`{"name":"Pram","email":"pram@example.com","password":"rahasia123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/authors", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	raw, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)

	var authors []map[string]any
	require.NoError(t, json.Unmarshal(raw, &authors))
	require.Len(t, authors, 1)
	require.NotContains(t, authors[0], "password")
}

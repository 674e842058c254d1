package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"vinahous/internal/config"
	"vinahous/internal/dataset"
	"vinahous/internal/http/handlers"
	"vinahous/internal/repos"
	"vinahous/internal/services"
)

// newTestApp wires the full API over the embedded catalog, a :memory: cart
// database and a temp export directory.
func newTestApp(t *testing.T, adminHash string) (*fiber.App, *repos.ProductStore) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	products, err := dataset.Load()
	if err != nil {
		t.Fatal(err)
	}
	store := repos.NewProductStore(products)
	auth := services.NewAuthService(adminHash)
	cfg := config.Config{ExportDir: t.TempDir()}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	handlers.NewDeps(db, store, cfg, auth).Register(app, auth)
	return app, store
}

// doJSON performs one request and decodes the response body into out (when
// out is non-nil). An empty sid skips the session cookie.
func doJSON(t *testing.T, app *fiber.App, method, target, body, sid string, out any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	if out != nil {
		b, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(b, out); err != nil {
			t.Fatalf("%s %s: bad JSON %q: %v", method, target, string(b), err)
		}
	}
	return resp
}

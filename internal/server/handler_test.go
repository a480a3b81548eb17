package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emrgen/portfolio/internal/cache"
	"github.com/emrgen/portfolio/internal/config"
	"github.com/emrgen/portfolio/internal/content"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/emrgen/portfolio/internal/store"
	"github.com/emrgen/portfolio/internal/tester"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func testServer(t *testing.T) (*fiber.App, cache.ContentCache) {
	t.Helper()
	tester.Setup()
	t.Cleanup(tester.RemoveDBFile)

	contentCache := tester.Cache()
	svc := service.NewContentService(store.NewGormStore(tester.TestDB()), contentCache, nil)

	cnf := &config.Config{
		Port:             "0",
		AdminUser:        "admin",
		AdminPassword:    "secret",
		RevalidateSecret: "revalidate-secret",
	}

	return NewServer(cnf, svc, contentCache, nil).App(), contentCache
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestHandler_GetContent(t *testing.T) {
	app, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var doc content.Document
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&doc))
	assert.NotEmpty(t, doc.PersonalInfo.Name, "empty database still renders fallback content")
}

func TestHandler_AdminRequiresAuth(t *testing.T) {
	app, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/content", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestHandler_SaveContent(t *testing.T) {
	app, _ := testServer(t)

	doc := content.DefaultDocument()
	doc.PersonalInfo.Name = "Saved Via HTTP"
	body, err := json.Marshal(doc)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/content", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", basicAuth("admin", "secret"))
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/content", nil)
	req.Header.Set("Authorization", basicAuth("admin", "secret"))
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var loaded content.Document
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&loaded))
	assert.Equal(t, "Saved Via HTTP", loaded.PersonalInfo.Name)
}

func TestHandler_Revalidate(t *testing.T) {
	app, contentCache := testServer(t)

	doc := content.DefaultDocument()
	assert.NoError(t, contentCache.SetDocument(context.TODO(), &doc))

	body, _ := json.Marshal(map[string]string{"secret": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	cached, _ := contentCache.GetDocument(context.TODO())
	assert.NotNil(t, cached, "wrong secret must not drop the cache")

	body, _ = json.Marshal(map[string]string{"secret": "revalidate-secret"})
	req = httptest.NewRequest(http.MethodPost, "/api/revalidate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var out map[string]bool
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.True(t, out["revalidated"])

	cached, _ = contentCache.GetDocument(context.TODO())
	assert.Nil(t, cached)
}

func TestHandler_UploadWithoutBlobStore(t *testing.T) {
	app, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", nil)
	req.Header.Set("Authorization", basicAuth("admin", "secret"))
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

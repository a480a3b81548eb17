package server

import (
	"errors"
	"path"
	"strings"

	"github.com/emrgen/portfolio/internal/auth"
	"github.com/emrgen/portfolio/internal/blob"
	"github.com/emrgen/portfolio/internal/cache"
	"github.com/emrgen/portfolio/internal/content"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	maxImageSize = 5 << 20  // 5MB
	maxPdfSize   = 10 << 20 // 10MB
)

var allowedUploadTypes = map[string]int64{
	"image/jpeg":      maxImageSize,
	"image/png":       maxImageSize,
	"image/gif":       maxImageSize,
	"image/webp":      maxImageSize,
	"application/pdf": maxPdfSize,
}

type Handler struct {
	service          *service.ContentService
	cache            cache.ContentCache
	blobs            blob.Store
	revalidateSecret string
}

func NewHandler(svc *service.ContentService, contentCache cache.ContentCache, blobs blob.Store, revalidateSecret string) *Handler {
	return &Handler{
		service:          svc,
		cache:            contentCache,
		blobs:            blobs,
		revalidateSecret: revalidateSecret,
	}
}

// GetContent serves the published document to the public site.
func (h *Handler) GetContent(c *fiber.Ctx) error {
	doc := h.service.Published(c.Context())
	return c.JSON(doc)
}

// LoadContent serves a fresh (uncached) document to the admin panel.
func (h *Handler) LoadContent(c *fiber.Ctx) error {
	doc := h.service.Load(c.Context())
	return c.JSON(doc)
}

// SaveContent persists the full document supplied by the admin panel.
// Persistence errors are returned to the caller verbatim so the editor
// can see what failed and retry; the in-memory edits live client-side
// and are untouched by a failed save.
func (h *Handler) SaveContent(c *fiber.Ctx) error {
	var doc content.Document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	ident := identityFrom(c)
	if err := h.service.Save(c.Context(), ident, doc); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrNotAuthenticated) {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"saved": true})
}

type revalidateReq struct {
	Secret string `json:"secret"`
}

// Revalidate drops the cached document when called with the shared
// secret. This is the endpoint the invalidation signal targets.
func (h *Handler) Revalidate(c *fiber.Ctx) error {
	var req revalidateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if h.revalidateSecret == "" || req.Secret != h.revalidateSecret {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid secret"})
	}

	if h.cache != nil {
		if err := h.cache.DeleteDocument(c.Context()); err != nil {
			logrus.Warnf("failed to drop content cache: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"revalidated": false})
		}
	}

	return c.JSON(fiber.Map{"revalidated": true})
}

// Upload stores a file in the blob store and returns its public URL.
func (h *Handler) Upload(c *fiber.Ctx) error {
	if h.blobs == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "blob store not configured"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}

	contentType := file.Header.Get("Content-Type")
	limit, ok := allowedUploadTypes[contentType]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported file type " + contentType})
	}
	if file.Size > limit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file too large"})
	}

	dir := c.FormValue("path", "uploads")
	key := path.Join(dir, uuid.New().String()+strings.ToLower(path.Ext(file.Filename)))

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer src.Close()

	url, err := h.blobs.Upload(c.Context(), key, contentType, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": url})
}

func identityFrom(c *fiber.Ctx) auth.Identity {
	if username, ok := c.Locals("username").(string); ok && username != "" {
		return auth.Identity{Subject: username}
	}
	return auth.Anonymous
}

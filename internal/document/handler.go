package document

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	authhandler "github.com/dev-charan/Digi-Locker/internal/auth/handler"
	authconstant "github.com/dev-charan/Digi-Locker/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"image/jpeg": true,
	"image/png":  true,
	"text/plain": true,
}

type Handler struct {
	repo      Repository
	uploadDir string
	logger    *slog.Logger
}

func NewHandler(repo Repository, uploadDir string, logger *slog.Logger) *Handler {
	return &Handler{
		repo:      repo,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// RegisterRoutes mounts the document CRUD behind the session middleware.
func RegisterRoutes(app *fiber.App, h *Handler, requireAuth fiber.Handler) {
	docs := app.Group("/documents", requireAuth)

	docs.Post("/upload", h.Upload)
	docs.Get("/", h.List)
	docs.Get("/:id", h.Get)
	docs.Put("/:id", h.Update)
	docs.Delete("/:id", h.Delete)
	docs.Get("/:id/download", h.Download)
}

func (h *Handler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "document file required"})
	}

	if file.Size > authconstant.MaxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file exceeds 10MB limit"})
	}

	mimeType := file.Header.Get(fiber.HeaderContentType)
	if !allowedMimeTypes[mimeType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only PDF, DOC, DOCX, JPG, PNG, and TXT are allowed.",
		})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return h.serverError(c, err)
	}

	docID := uuid.NewString()
	storedPath := filepath.Join(h.uploadDir, docID+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, storedPath); err != nil {
		return h.serverError(c, err)
	}

	now := time.Now()
	doc := &Document{
		ID:          docID,
		UserID:      userID(c),
		Title:       c.FormValue("title", file.Filename),
		Description: c.FormValue("description"),
		FileName:    file.Filename,
		StoredPath:  storedPath,
		MimeType:    mimeType,
		SizeBytes:   file.Size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(c.Context(), doc); err != nil {
		// Keep disk and table consistent when the insert fails.
		_ = os.Remove(storedPath)
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *Handler) List(c *fiber.Ctx) error {
	docs, err := h.repo.ListByUser(c.Context(), userID(c))
	if err != nil {
		return h.serverError(c, err)
	}

	return c.JSON(docs)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	doc, err := h.repo.GetByID(c.Context(), c.Params("id"), userID(c))
	if err != nil {
		return h.serverError(c, err)
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}

	return c.JSON(doc)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	doc, err := h.repo.UpdateMeta(c.Context(), c.Params("id"), userID(c), input.Title, input.Description)
	if err != nil {
		return h.serverError(c, err)
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}

	return c.JSON(doc)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	doc, err := h.repo.Delete(c.Context(), c.Params("id"), userID(c))
	if err != nil {
		return h.serverError(c, err)
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}

	if err := os.Remove(doc.StoredPath); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("failed to remove document file", "path", doc.StoredPath, "error", err)
	}

	return c.JSON(fiber.Map{"message": "Document deleted"})
}

func (h *Handler) Download(c *fiber.Ctx) error {
	doc, err := h.repo.GetByID(c.Context(), c.Params("id"), userID(c))
	if err != nil {
		return h.serverError(c, err)
	}
	if doc == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}

	return c.Download(doc.StoredPath, doc.FileName)
}

func (h *Handler) serverError(c *fiber.Ctx, err error) error {
	h.logger.Error("document operation failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server error"})
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(authhandler.UserIDKey).(string)
	return id
}

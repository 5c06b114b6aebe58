package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/apps/media"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/storage"
)

// UploadHandler receives multipart uploads, stores the files on disk and
// records them as media rows.
type UploadHandler struct {
	store *storage.Storage
	media *media.Service
}

func NewUploadHandler(store *storage.Storage, mediaService *media.Service) *UploadHandler {
	return &UploadHandler{store: store, media: mediaService}
}

func (h *UploadHandler) UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "No photo uploaded")
	}
	m, err := h.save(c, file, true)
	if err != nil {
		return h.uploadError(c, err)
	}
	return dto.Created(c, "Photo uploaded successfully", fiber.Map{
		"media": m,
		"url":   h.store.PublicURL(m.FilePath),
	})
}

func (h *UploadHandler) UploadPhotos(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return dto.Error(c, fiber.StatusBadRequest, "No photos uploaded")
	}

	uploaded := make([]fiber.Map, 0, len(files))
	for _, file := range files {
		m, err := h.save(c, file, true)
		if err != nil {
			return h.uploadError(c, err)
		}
		uploaded = append(uploaded, fiber.Map{
			"media": m,
			"url":   h.store.PublicURL(m.FilePath),
		})
	}
	return dto.Created(c, "Photos uploaded successfully", fiber.Map{"files": uploaded})
}

func (h *UploadHandler) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "No file uploaded")
	}
	m, err := h.save(c, file, false)
	if err != nil {
		return h.uploadError(c, err)
	}
	return dto.Created(c, "File uploaded successfully", fiber.Map{
		"media": m,
		"url":   h.store.PublicURL(m.FilePath),
	})
}

func (h *UploadHandler) FileInfo(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid file ID")
	}

	m, err := h.media.Get(uint(id))
	if err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "File not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching file info")
	}
	return dto.Success(c, "", fiber.Map{
		"media": m,
		"url":   h.store.PublicURL(m.FilePath),
	})
}

func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid file ID")
	}

	if err := h.media.Delete(uint(id)); err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "File not found")
		}
		slog.Error("delete upload failed", "module", "upload", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting file")
	}
	return dto.Success(c, "File deleted successfully", nil)
}

var (
	errTooLarge   = errors.New("file exceeds the maximum upload size")
	errBadType    = errors.New("file type is not allowed")
	errNotAnImage = errors.New("uploaded file is not an image")
)

func (h *UploadHandler) save(c *fiber.Ctx, file *multipart.FileHeader, imageOnly bool) (*media.Media, error) {
	mimeType := file.Header.Get("Content-Type")
	if imageOnly && !strings.HasPrefix(mimeType, "image/") {
		return nil, errNotAnImage
	}
	if !h.store.Allowed(mimeType) {
		return nil, errBadType
	}
	if file.Size > h.store.MaxSize() {
		return nil, errTooLarge
	}

	path := h.store.PathFor(mimeType, file.Filename)
	if err := c.SaveFile(file, path); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	size := file.Size
	m, err := h.media.Create(&media.CreateMediaRequest{
		Title:    file.Filename,
		Type:     mediaTypeFor(mimeType),
		FileName: file.Filename,
		FilePath: path,
		FileSize: &size,
		MimeType: &mimeType,
	})
	if err != nil {
		h.store.Remove(path)
		return nil, err
	}
	return m, nil
}

func (h *UploadHandler) uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errNotAnImage), errors.Is(err, errBadType), errors.Is(err, errTooLarge):
		return dto.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		slog.Error("upload failed", "module", "upload", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error uploading file")
	}
}

func mediaTypeFor(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return media.TypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return media.TypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return media.TypeAudio
	default:
		return media.TypeDocument
	}
}

package elibrary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/storage"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("library entry not found")

type Service struct {
	db    *gorm.DB
	store *storage.Storage
}

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) Create(req *CreateEntryRequest) (*Entry, error) {
	e := Entry{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		Category:        req.Category,
		Language:        req.Language,
		Format:          req.Format,
		FilePath:        req.FilePath,
		FileSize:        req.FileSize,
		ThumbnailPath:   req.ThumbnailPath,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		Publisher:       req.Publisher,
		Tags:            req.Tags,
		IsActive:        true,
	}
	if req.SortOrder != nil {
		e.SortOrder = *req.SortOrder
	}
	if err := s.db.Create(&e).Error; err != nil {
		return nil, fmt.Errorf("failed to create library entry: %w", err)
	}
	return &e, nil
}

func (s *Service) List(page, limit int, category, format, language, search string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Entry{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if format != "" {
		query = query.Where("format = ?", format)
	}
	if language != "" {
		query = query.Where("language = ?", language)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var entries []Entry
	if err := query.Order("sort_order ASC, id DESC").
		Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Entries:    entries,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Entry, error) {
	var e Entry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Service) Update(id uint, req *UpdateEntryRequest) (*Entry, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.Format != nil {
		updates["format"] = *req.Format
	}
	if req.ThumbnailPath != nil {
		updates["thumbnail_path"] = *req.ThumbnailPath
	}
	if req.ISBN != nil {
		updates["isbn"] = *req.ISBN
	}
	if req.PublicationYear != nil {
		updates["publication_year"] = *req.PublicationYear
	}
	if req.Publisher != nil {
		updates["publisher"] = *req.Publisher
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Entry{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update library entry: %w", err)
		}
	}
	return s.Get(id)
}

// RecordDownload bumps the counter atomically and returns the entry so
// the handler can hand back the file path.
func (s *Service) RecordDownload(id uint) (*Entry, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.db.Model(&Entry{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error; err != nil {
		return nil, fmt.Errorf("failed to record download: %w", err)
	}
	return s.Get(id)
}

// Delete removes the row and best-effort deletes the file plus its
// thumbnail.
func (s *Service) Delete(id uint) error {
	e, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&Entry{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.store.Remove(e.FilePath)
	if e.ThumbnailPath != nil {
		s.store.Remove(*e.ThumbnailPath)
	}
	return nil
}

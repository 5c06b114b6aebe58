package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/storage"
	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media not found")

type Service struct {
	db    *gorm.DB
	store *storage.Storage
}

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) Create(req *CreateMediaRequest) (*Media, error) {
	m := Media{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		FileName:    req.FileName,
		FilePath:    req.FilePath,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		Category:    req.Category,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
		IsActive:    true,
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}
	return &m, nil
}

func (s *Service) List(page, limit int, mediaType, category, search string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Media{})
	if mediaType != "" {
		query = query.Where("type = ?", mediaType)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []Media
	if err := query.Order("sort_order ASC, id DESC").
		Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Media:      items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Media, error) {
	var m Media
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(id uint, req *UpdateMediaRequest) (*Media, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.Metadata != nil {
		updates["metadata"] = req.Metadata
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Media{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update media: %w", err)
		}
	}
	return s.Get(id)
}

// Delete removes the row, then best-effort deletes the backing file. An
// orphaned file never fails the request.
func (s *Service) Delete(id uint) error {
	m, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&Media{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.store.Remove(m.FilePath)
	return nil
}

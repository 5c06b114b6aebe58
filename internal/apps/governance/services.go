package governance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("governance document not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req *CreateDocumentRequest) (*Document, error) {
	d := Document{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Content:       req.Content,
		Documents:     req.Documents,
		EffectiveDate: req.EffectiveDate,
		Version:       "1.0",
		IsActive:      true,
	}
	if req.Version != nil {
		d.Version = *req.Version
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		d.SortOrder = *req.SortOrder
	}
	if err := s.db.Create(&d).Error; err != nil {
		return nil, fmt.Errorf("failed to create governance document: %w", err)
	}
	return &d, nil
}

func (s *Service) List(page, limit int, category, search string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Document{})
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

	var docs []Document
	if err := query.Order("sort_order ASC, id ASC").
		Limit(limit).Offset(offset).Find(&docs).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Documents:  docs,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Document, error) {
	var d Document
	if err := s.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *Service) Update(id uint, req *UpdateDocumentRequest) (*Document, error) {
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
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Documents != nil {
		updates["documents"] = req.Documents
	}
	if req.EffectiveDate != nil {
		updates["effective_date"] = *req.EffectiveDate
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Document{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update governance document: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id uint) error {
	result := s.db.Model(&Document{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

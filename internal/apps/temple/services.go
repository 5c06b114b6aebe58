package temple

import (
	"errors"
	"fmt"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"gorm.io/gorm"
)

var ErrSectionNotFound = errors.New("temple section not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req *CreateInfoRequest) (*Info, error) {
	info := Info{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		Images:      req.Images,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		Timing:      req.Timing,
		IsActive:    true,
	}
	if req.IsActive != nil {
		info.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		info.SortOrder = *req.SortOrder
	}
	if err := s.db.Create(&info).Error; err != nil {
		return nil, fmt.Errorf("failed to create temple section: %w", err)
	}
	return &info, nil
}

// List returns active sections unless includeInactive is set; inactive
// rows stay fetchable by id.
func (s *Service) List(page, limit int, category string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Info{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var sections []Info
	if err := query.Order("sort_order ASC, id ASC").
		Limit(limit).Offset(offset).Find(&sections).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Sections:   sections,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) ByCategory(category string) ([]Info, error) {
	var sections []Info
	if err := s.db.Where("category = ? AND is_active = ?", category, true).
		Order("sort_order ASC, id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *Service) Get(id uint) (*Info, error) {
	var info Info
	if err := s.db.First(&info, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (s *Service) Update(id uint, req *UpdateInfoRequest) (*Info, error) {
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
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = req.ContactInfo
	}
	if req.Timing != nil {
		updates["timing"] = req.Timing
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Info{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update temple section: %w", err)
		}
	}
	return s.Get(id)
}

// Delete is a soft delete: the row is kept, flagged inactive.
func (s *Service) Delete(id uint) error {
	result := s.db.Model(&Info{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

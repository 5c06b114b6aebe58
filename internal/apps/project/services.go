package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req *CreateProjectRequest) (*Project, error) {
	p := Project{
		Name:                req.Name,
		Description:         req.Description,
		Category:            req.Category,
		Objective:           req.Objective,
		TargetBeneficiaries: req.TargetBeneficiaries,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Budget:              req.Budget,
		Images:              req.Images,
		Documents:           req.Documents,
		ContactPerson:       req.ContactPerson,
		ContactInfo:         req.ContactInfo,
		Status:              StatusPlanning,
		IsActive:            true,
	}
	if req.CurrentFunding != nil {
		p.CurrentFunding = *req.CurrentFunding
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

func (s *Service) List(page, limit int, category, status, search string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Project{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var projects []Project
	if err := query.Order("sort_order ASC, id DESC").
		Limit(limit).Offset(offset).Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Projects:   projects,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Project, error) {
	var p Project
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(id uint, req *UpdateProjectRequest) (*Project, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Objective != nil {
		updates["objective"] = *req.Objective
	}
	if req.TargetBeneficiaries != nil {
		updates["target_beneficiaries"] = *req.TargetBeneficiaries
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.CurrentFunding != nil {
		updates["current_funding"] = *req.CurrentFunding
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Documents != nil {
		updates["documents"] = req.Documents
	}
	if req.ContactPerson != nil {
		updates["contact_person"] = *req.ContactPerson
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = req.ContactInfo
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id uint) error {
	result := s.db.Model(&Project{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ActiveSnapshot feeds the public dashboard.
func (s *Service) ActiveSnapshot(limit int) ([]Project, error) {
	var projects []Project
	if err := s.db.Where("status = ? AND is_active = ?", StatusActive, true).
		Order("sort_order ASC, id DESC").Limit(limit).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CountByStatus feeds the admin dashboard.
func (s *Service) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&Project{}).
		Select("status, COUNT(*) AS count").
		Where("is_active = ?", true).Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

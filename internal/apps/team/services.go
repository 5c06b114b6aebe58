package team

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("team member not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req *CreateMemberRequest) (*Member, error) {
	m := Member{
		Name:        req.Name,
		Designation: req.Designation,
		Department:  req.Department,
		Bio:         req.Bio,
		Photo:       req.Photo,
		Email:       req.Email,
		Phone:       req.Phone,
		Skills:      req.Skills,
		Experience:  req.Experience,
		SocialLinks: req.SocialLinks,
		JoinedDate:  req.JoinedDate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return &m, nil
}

func (s *Service) List(page, limit int, department, search string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Member{})
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(designation) LIKE ?", like, like)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var members []Member
	if err := query.Order("sort_order ASC, id ASC").
		Limit(limit).Offset(offset).Find(&members).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Members:    members,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Member, error) {
	var m Member
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(id uint, req *UpdateMemberRequest) (*Member, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Designation != nil {
		updates["designation"] = *req.Designation
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Skills != nil {
		updates["skills"] = req.Skills
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.SocialLinks != nil {
		updates["social_links"] = req.SocialLinks
	}
	if req.JoinedDate != nil {
		updates["joined_date"] = *req.JoinedDate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Member{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update team member: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id uint) error {
	result := s.db.Model(&Member{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

package invitation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/seqid"
	"gorm.io/gorm"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create allocates the next EVT- id and persists the event in one
// transaction. The counter row lock serializes concurrent creates.
func (s *Service) Create(req *CreateInvitationRequest) (*Invitation, error) {
	inv := Invitation{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Venue:       req.Venue,
		Organizer:   req.Organizer,
		ContactInfo: req.ContactInfo,
		Images:      req.Images,
		Category:    req.Category,
		CategoryID:  req.CategoryID,
		Status:      StatusPlanning,
		IsActive:    true,
	}
	if req.RegistrationRequired != nil {
		inv.RegistrationRequired = *req.RegistrationRequired
	}
	inv.MaxParticipants = req.MaxParticipants
	if req.Status != nil {
		inv.Status = *req.Status
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		id, err := seqid.Allocate(tx, IDPrefix)
		if err != nil {
			return err
		}
		inv.InvitationID = id
		return tx.Create(&inv).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	return &inv, nil
}

func (s *Service) List(page, limit int, status, category, search string, includeInactive bool) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Invitation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(venue) LIKE ? OR LOWER(invitation_id) LIKE ?",
			like, like, like)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var invitations []Invitation
	if err := query.Order("event_date ASC, id ASC").
		Limit(limit).Offset(offset).Find(&invitations).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Invitations: invitations,
		Pagination:  dto.NewPagination(page, limit, total),
	}, nil
}

// Upcoming returns the next active future events for the public site.
func (s *Service) Upcoming(limit int) ([]Invitation, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	var invitations []Invitation
	if err := s.db.
		Where("event_date >= ? AND is_active = ? AND status IN ?",
			time.Now(), true, []string{StatusPlanning, StatusActive}).
		Order("event_date ASC").Limit(limit).Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

func (s *Service) Get(id uint) (*Invitation, error) {
	var inv Invitation
	if err := s.db.First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// Update never touches InvitationID.
func (s *Service) Update(id uint, req *UpdateInvitationRequest) (*Invitation, error) {
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
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.Organizer != nil {
		updates["organizer"] = *req.Organizer
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = req.ContactInfo
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.RegistrationRequired != nil {
		updates["registration_required"] = *req.RegistrationRequired
	}
	if req.MaxParticipants != nil {
		updates["max_participants"] = *req.MaxParticipants
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Invitation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update invitation: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id uint) error {
	result := s.db.Model(&Invitation{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

// CountByStatus feeds the admin dashboard.
func (s *Service) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&Invitation{}).
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

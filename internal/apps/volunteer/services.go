package volunteer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/seqid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrVolunteerNotFound   = errors.New("volunteer not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrDuplicateNumber     = errors.New("certificate number already exists")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create allocates the next sequential volunteer ID and persists the
// application in one transaction. The counter row lock serializes
// concurrent creates; a rolled-back insert releases its value for reuse.
func (s *Service) Create(req *CreateVolunteerRequest) (*Volunteer, error) {
	v := Volunteer{
		Name:                req.Name,
		Email:               req.Email,
		Qualification:       req.Qualification,
		Occupation:          req.Occupation,
		Gender:              req.Gender,
		BloodGroup:          req.BloodGroup,
		IsBloodDonor:        req.IsBloodDonor,
		DateOfBirth:         req.DateOfBirth,
		Address:             req.Address,
		PhoneNumber:         req.PhoneNumber,
		MaritalStatus:       req.MaritalStatus,
		Availability:        req.Availability,
		SpecificTime:        req.SpecificTime,
		FeedbackSuggestions: req.FeedbackSuggestions,
		Status:              StatusPending,
	}
	if req.AreasOfInterest != nil {
		raw, err := json.Marshal(req.AreasOfInterest)
		if err != nil {
			return nil, fmt.Errorf("failed to encode areas of interest: %w", err)
		}
		v.AreasOfInterest = datatypes.JSON(raw)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		id, err := seqid.Allocate(tx, IDPrefix)
		if err != nil {
			return err
		}
		v.VolunteerID = id
		return tx.Create(&v).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}
	return &v, nil
}

func (s *Service) List(page, limit int, status, availability, search string) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Volunteer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if availability != "" {
		query = query.Where("availability = ?", availability)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(volunteer_id) LIKE ?",
			like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var volunteers []Volunteer
	if err := query.Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).Find(&volunteers).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Volunteers: volunteers,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Volunteer, error) {
	var v Volunteer
	if err := s.db.Preload("Certificates").First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Update applies profile changes. VolunteerID is immutable and Status
// changes only through UpdateStatus.
func (s *Service) Update(id uint, req *UpdateVolunteerRequest) (*Volunteer, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Qualification != nil {
		updates["qualification"] = *req.Qualification
	}
	if req.Occupation != nil {
		updates["occupation"] = *req.Occupation
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.BloodGroup != nil {
		updates["blood_group"] = *req.BloodGroup
	}
	if req.IsBloodDonor != nil {
		updates["is_blood_donor"] = *req.IsBloodDonor
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.MaritalStatus != nil {
		updates["marital_status"] = *req.MaritalStatus
	}
	if req.AreasOfInterest != nil {
		raw, err := json.Marshal(req.AreasOfInterest)
		if err != nil {
			return nil, fmt.Errorf("failed to encode areas of interest: %w", err)
		}
		updates["areas_of_interest"] = datatypes.JSON(raw)
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.SpecificTime != nil {
		updates["specific_time"] = *req.SpecificTime
	}
	if req.FeedbackSuggestions != nil {
		updates["feedback_suggestions"] = *req.FeedbackSuggestions
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Volunteer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update volunteer: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) UpdateStatus(id uint, status string) (*Volunteer, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.db.Model(&Volunteer{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update volunteer status: %w", err)
	}
	return s.Get(id)
}

// Delete removes the volunteer; certificates go with it via the FK
// cascade.
func (s *Service) Delete(id uint) error {
	result := s.db.Delete(&Volunteer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVolunteerNotFound
	}
	return nil
}

// --- certificates ---

func (s *Service) AddCertificate(volunteerID uint, req *CreateCertificateRequest) (*Certificate, error) {
	if _, err := s.Get(volunteerID); err != nil {
		return nil, err
	}

	issued := time.Now()
	if req.IssuedDate != nil {
		issued = *req.IssuedDate
	}

	cert := Certificate{
		VolunteerID:       volunteerID,
		EventName:         req.EventName,
		IssuedDate:        issued,
		CertificateNumber: req.CertificateNumber,
		Description:       req.Description,
		IssuedBy:          req.IssuedBy,
		FileURL:           req.FileURL,
	}
	if err := s.db.Create(&cert).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return &cert, nil
}

func (s *Service) ListCertificates(volunteerID uint) ([]Certificate, error) {
	if _, err := s.Get(volunteerID); err != nil {
		return nil, err
	}
	var certs []Certificate
	if err := s.db.Where("volunteer_id = ?", volunteerID).
		Order("issued_date DESC, id DESC").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (s *Service) DeleteCertificate(certID uint) error {
	result := s.db.Delete(&Certificate{}, "id = ?", certID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

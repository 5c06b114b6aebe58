package astrology

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/seva-foundation/temple-backend/internal/dto"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrConsultationNotFound = errors.New("consultation not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req *CreateConsultationRequest) (*Consultation, error) {
	services, err := json.Marshal(req.ServiceRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to encode requested services: %w", err)
	}

	con := Consultation{
		FullName:                 req.FullName,
		DateOfBirth:              req.DateOfBirth,
		TimeOfBirth:              req.TimeOfBirth,
		CityStateCountry:         req.CityStateCountry,
		Age:                      req.Age,
		Gender:                   req.Gender,
		MobileNumber:             req.MobileNumber,
		EmailAddress:             req.EmailAddress,
		CompleteAddress:          req.CompleteAddress,
		ServiceRequired:          datatypes.JSON(services),
		PreferredAppointmentDate: req.PreferredAppointmentDate,
		PreferredAppointmentTime: req.PreferredAppointmentTime,
		DetailedRequirements:     req.DetailedRequirements,
		Status:                   StatusPending,
	}
	if err := s.db.Create(&con).Error; err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	return &con, nil
}

func (s *Service) List(page, limit int, status, search string) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Consultation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(full_name) LIKE ? OR LOWER(email_address) LIKE ? OR mobile_number LIKE ?",
			like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var consultations []Consultation
	if err := query.Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).Find(&consultations).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Consultations: consultations,
		Pagination:    dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Consultation, error) {
	var con Consultation
	if err := s.db.First(&con, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return &con, nil
}

func (s *Service) Update(id uint, req *UpdateConsultationRequest) (*Consultation, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	if req.TimeOfBirth != nil {
		updates["time_of_birth"] = *req.TimeOfBirth
	}
	if req.CityStateCountry != nil {
		updates["city_state_country"] = *req.CityStateCountry
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.MobileNumber != nil {
		updates["mobile_number"] = *req.MobileNumber
	}
	if req.EmailAddress != nil {
		updates["email_address"] = *req.EmailAddress
	}
	if req.CompleteAddress != nil {
		updates["complete_address"] = *req.CompleteAddress
	}
	if req.ServiceRequired != nil {
		services, err := json.Marshal(req.ServiceRequired)
		if err != nil {
			return nil, fmt.Errorf("failed to encode requested services: %w", err)
		}
		updates["service_required"] = datatypes.JSON(services)
	}
	if req.PreferredAppointmentDate != nil {
		updates["preferred_appointment_date"] = *req.PreferredAppointmentDate
	}
	if req.PreferredAppointmentTime != nil {
		updates["preferred_appointment_time"] = *req.PreferredAppointmentTime
	}
	if req.DetailedRequirements != nil {
		updates["detailed_requirements"] = *req.DetailedRequirements
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&Consultation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update consultation: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id uint) error {
	result := s.db.Delete(&Consultation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConsultationNotFound
	}
	return nil
}

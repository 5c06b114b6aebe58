package astrology

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Consultation is a booking request for an astrology service.
type Consultation struct {
	ID                       uint           `gorm:"primaryKey" json:"id"`
	FullName                 string         `gorm:"size:150;not null" json:"fullName"`
	DateOfBirth              time.Time      `gorm:"type:date;not null" json:"dateOfBirth"`
	TimeOfBirth              string         `gorm:"size:20;not null" json:"timeOfBirth"`
	CityStateCountry         string         `gorm:"size:200;not null" json:"cityStateCountry"`
	Age                      int            `gorm:"not null" json:"age"`
	Gender                   string         `gorm:"size:10;not null" json:"gender"`
	MobileNumber             string         `gorm:"size:20;not null" json:"mobileNumber"`
	EmailAddress             string         `gorm:"size:150;not null" json:"emailAddress"`
	CompleteAddress          *string        `gorm:"type:text" json:"completeAddress,omitempty"`
	ServiceRequired          datatypes.JSON `gorm:"not null" json:"serviceRequired"`
	PreferredAppointmentDate *time.Time     `gorm:"type:date" json:"preferredAppointmentDate,omitempty"`
	PreferredAppointmentTime string         `gorm:"size:20;not null" json:"preferredAppointmentTime"`
	DetailedRequirements     *string        `gorm:"type:text" json:"detailedRequirements,omitempty"`
	Status                   string         `gorm:"size:10;not null;default:'pending'" json:"status"`
	CreatedAt                time.Time      `json:"createdAt"`
	UpdatedAt                time.Time      `json:"updatedAt"`
}

func (Consultation) TableName() string {
	return "astrology_consultations"
}

type CreateConsultationRequest struct {
	FullName                 string     `json:"fullName" validate:"required,max=150"`
	DateOfBirth              time.Time  `json:"dateOfBirth" validate:"required"`
	TimeOfBirth              string     `json:"timeOfBirth" validate:"required,max=20"`
	CityStateCountry         string     `json:"cityStateCountry" validate:"required,max=200"`
	Age                      int        `json:"age" validate:"required,gt=0,lte=120"`
	Gender                   string     `json:"gender" validate:"required,oneof=Male Female Other"`
	MobileNumber             string     `json:"mobileNumber" validate:"required,max=20"`
	EmailAddress             string     `json:"emailAddress" validate:"required,email,max=150"`
	CompleteAddress          *string    `json:"completeAddress"`
	ServiceRequired          []string   `json:"serviceRequired" validate:"required,min=1"`
	PreferredAppointmentDate *time.Time `json:"preferredAppointmentDate"`
	PreferredAppointmentTime string     `json:"preferredAppointmentTime" validate:"required,max=20"`
	DetailedRequirements     *string    `json:"detailedRequirements"`
}

type UpdateConsultationRequest struct {
	FullName                 *string    `json:"fullName" validate:"omitempty,max=150"`
	DateOfBirth              *time.Time `json:"dateOfBirth"`
	TimeOfBirth              *string    `json:"timeOfBirth" validate:"omitempty,max=20"`
	CityStateCountry         *string    `json:"cityStateCountry" validate:"omitempty,max=200"`
	Age                      *int       `json:"age" validate:"omitempty,gt=0,lte=120"`
	Gender                   *string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	MobileNumber             *string    `json:"mobileNumber" validate:"omitempty,max=20"`
	EmailAddress             *string    `json:"emailAddress" validate:"omitempty,email,max=150"`
	CompleteAddress          *string    `json:"completeAddress"`
	ServiceRequired          []string   `json:"serviceRequired" validate:"omitempty,min=1"`
	PreferredAppointmentDate *time.Time `json:"preferredAppointmentDate"`
	PreferredAppointmentTime *string    `json:"preferredAppointmentTime" validate:"omitempty,max=20"`
	DetailedRequirements     *string    `json:"detailedRequirements"`
	Status                   *string    `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type ListResponse struct {
	Consultations []Consultation `json:"consultations"`
	Pagination    interface{}    `json:"pagination"`
}

package volunteer

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// IDPrefix is joined to the zero-padded sequence number, e.g. VOL-0001.
const IDPrefix = "VOL-"

// Volunteer is an application submitted through the public website.
// VolunteerID is assigned exactly once before the first persist and is
// immutable afterwards.
type Volunteer struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	VolunteerID         string         `gorm:"size:20;not null;uniqueIndex" json:"volunteerId"`
	Name                string         `gorm:"size:100;not null" json:"name"`
	Email               *string        `gorm:"size:100" json:"email,omitempty"`
	Qualification       *string        `gorm:"size:200" json:"qualification,omitempty"`
	Occupation          *string        `gorm:"size:100" json:"occupation,omitempty"`
	Gender              *string        `gorm:"size:10" json:"gender,omitempty"`
	BloodGroup          *string        `gorm:"size:15" json:"bloodGroup,omitempty"`
	IsBloodDonor        *bool          `json:"isBloodDonor,omitempty"`
	DateOfBirth         *time.Time     `gorm:"type:date" json:"dateOfBirth,omitempty"`
	Address             *string        `gorm:"type:text" json:"address,omitempty"`
	PhoneNumber         *string        `gorm:"size:15" json:"phoneNumber,omitempty"`
	MaritalStatus       *string        `gorm:"size:10" json:"maritalStatus,omitempty"`
	AreasOfInterest     datatypes.JSON `json:"areasOfInterest,omitempty"`
	Availability        *string        `gorm:"size:20" json:"availability,omitempty"`
	SpecificTime        *string        `gorm:"size:200" json:"specificTime,omitempty"`
	FeedbackSuggestions *string        `gorm:"type:text" json:"feedbackSuggestions,omitempty"`
	Status              string         `gorm:"size:10;not null;default:'pending'" json:"status"`
	Certificates        []Certificate  `gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE" json:"certificates,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

// Certificate is issued to a volunteer for an event. Deleting the
// volunteer cascades to its certificates.
type Certificate struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	VolunteerID       uint      `gorm:"not null;index" json:"volunteerId"`
	EventName         string    `gorm:"size:150;not null" json:"eventName"`
	IssuedDate        time.Time `gorm:"type:date;not null" json:"issuedDate"`
	CertificateNumber string    `gorm:"size:50;not null;uniqueIndex" json:"certificateNumber"`
	Description       *string   `gorm:"type:text" json:"description,omitempty"`
	IssuedBy          *string   `gorm:"size:100" json:"issuedBy,omitempty"`
	FileURL           *string   `gorm:"size:255" json:"fileUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// --- DTOs ---

type CreateVolunteerRequest struct {
	Name                string     `json:"name" validate:"required,max=100"`
	Email               *string    `json:"email" validate:"omitempty,email,max=100"`
	Qualification       *string    `json:"qualification" validate:"omitempty,max=200"`
	Occupation          *string    `json:"occupation" validate:"omitempty,max=100"`
	Gender              *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup          *string    `json:"bloodGroup" validate:"omitempty,max=15"`
	IsBloodDonor        *bool      `json:"isBloodDonor"`
	DateOfBirth         *time.Time `json:"dateOfBirth"`
	Address             *string    `json:"address"`
	PhoneNumber         *string    `json:"phoneNumber" validate:"omitempty,min=10,max=15"`
	MaritalStatus       *string    `json:"maritalStatus" validate:"omitempty,oneof=single married divorced widowed"`
	AreasOfInterest     []string   `json:"areasOfInterest" validate:"omitempty,dive,oneof=temple_service social_service educational_support events medical_camps others"`
	Availability        *string    `json:"availability" validate:"omitempty,oneof=weekdays weekends flexible specific_time"`
	SpecificTime        *string    `json:"specificTime" validate:"omitempty,max=200"`
	FeedbackSuggestions *string    `json:"feedbackSuggestions"`
}

type UpdateVolunteerRequest struct {
	Name                *string    `json:"name" validate:"omitempty,max=100"`
	Email               *string    `json:"email" validate:"omitempty,email,max=100"`
	Qualification       *string    `json:"qualification" validate:"omitempty,max=200"`
	Occupation          *string    `json:"occupation" validate:"omitempty,max=100"`
	Gender              *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup          *string    `json:"bloodGroup" validate:"omitempty,max=15"`
	IsBloodDonor        *bool      `json:"isBloodDonor"`
	DateOfBirth         *time.Time `json:"dateOfBirth"`
	Address             *string    `json:"address"`
	PhoneNumber         *string    `json:"phoneNumber" validate:"omitempty,min=10,max=15"`
	MaritalStatus       *string    `json:"maritalStatus" validate:"omitempty,oneof=single married divorced widowed"`
	AreasOfInterest     []string   `json:"areasOfInterest" validate:"omitempty,dive,oneof=temple_service social_service educational_support events medical_camps others"`
	Availability        *string    `json:"availability" validate:"omitempty,oneof=weekdays weekends flexible specific_time"`
	SpecificTime        *string    `json:"specificTime" validate:"omitempty,max=200"`
	FeedbackSuggestions *string    `json:"feedbackSuggestions"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type CreateCertificateRequest struct {
	EventName         string     `json:"eventName" validate:"required,max=150"`
	IssuedDate        *time.Time `json:"issuedDate"`
	CertificateNumber string     `json:"certificateNumber" validate:"required,max=50"`
	Description       *string    `json:"description"`
	IssuedBy          *string    `json:"issuedBy" validate:"omitempty,max=100"`
	FileURL           *string    `json:"fileUrl" validate:"omitempty,max=255"`
}

type ListResponse struct {
	Volunteers []Volunteer `json:"volunteers"`
	Pagination interface{} `json:"pagination"`
}

package invitation

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusSuspended = "suspended"
)

// IDPrefix is joined to the zero-padded sequence number, e.g. EVT-0001.
const IDPrefix = "EVT-"

// Invitation is a temple event announcement. InvitationID is assigned
// sequentially before the first persist and never changes.
type Invitation struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	InvitationID         string         `gorm:"size:20;not null;uniqueIndex" json:"invitationId"`
	Title                string         `gorm:"size:200;not null" json:"title"`
	Description          string         `gorm:"type:text;not null" json:"description"`
	EventDate            time.Time      `gorm:"not null;index" json:"eventDate"`
	Venue                string         `gorm:"size:200;not null" json:"venue"`
	Organizer            *string        `gorm:"size:100" json:"organizer,omitempty"`
	ContactInfo          datatypes.JSON `json:"contactInfo,omitempty"`
	Images               datatypes.JSON `json:"images,omitempty"`
	Category             *string        `gorm:"size:50" json:"category,omitempty"`
	CategoryID           *string        `gorm:"size:50" json:"categoryId,omitempty"`
	RegistrationRequired bool           `gorm:"not null;default:false" json:"registrationRequired"`
	MaxParticipants      *int           `json:"maxParticipants,omitempty"`
	Status               string         `gorm:"size:20;not null;default:'planning'" json:"status"`
	IsActive             bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

func (Invitation) TableName() string {
	return "invitations"
}

type CreateInvitationRequest struct {
	Title                string         `json:"title" validate:"required,max=200"`
	Description          string         `json:"description" validate:"required"`
	EventDate            time.Time      `json:"eventDate" validate:"required"`
	Venue                string         `json:"venue" validate:"required,max=200"`
	Organizer            *string        `json:"organizer" validate:"omitempty,max=100"`
	ContactInfo          datatypes.JSON `json:"contactInfo"`
	Images               datatypes.JSON `json:"images"`
	Category             *string        `json:"category" validate:"omitempty,max=50"`
	CategoryID           *string        `json:"categoryId" validate:"omitempty,max=50"`
	RegistrationRequired *bool          `json:"registrationRequired"`
	MaxParticipants      *int           `json:"maxParticipants" validate:"omitempty,gt=0"`
	Status               *string        `json:"status" validate:"omitempty,oneof=planning active completed suspended"`
}

type UpdateInvitationRequest struct {
	Title                *string        `json:"title" validate:"omitempty,max=200"`
	Description          *string        `json:"description"`
	EventDate            *time.Time     `json:"eventDate"`
	Venue                *string        `json:"venue" validate:"omitempty,max=200"`
	Organizer            *string        `json:"organizer" validate:"omitempty,max=100"`
	ContactInfo          datatypes.JSON `json:"contactInfo"`
	Images               datatypes.JSON `json:"images"`
	Category             *string        `json:"category" validate:"omitempty,max=50"`
	CategoryID           *string        `json:"categoryId" validate:"omitempty,max=50"`
	RegistrationRequired *bool          `json:"registrationRequired"`
	MaxParticipants      *int           `json:"maxParticipants" validate:"omitempty,gt=0"`
	Status               *string        `json:"status" validate:"omitempty,oneof=planning active completed suspended"`
	IsActive             *bool          `json:"isActive"`
}

type ListResponse struct {
	Invitations []Invitation `json:"invitations"`
	Pagination  interface{}  `json:"pagination"`
}

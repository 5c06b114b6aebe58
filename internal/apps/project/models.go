package project

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

// Project is a foundation program (goshala, blood bank, food
// distribution and so on) tracked with its funding state.
type Project struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Name                string         `gorm:"size:200;not null" json:"name"`
	Description         string         `gorm:"type:text;not null" json:"description"`
	Category            string         `gorm:"size:50;not null;index" json:"category"`
	Objective           *string        `gorm:"type:text" json:"objective,omitempty"`
	TargetBeneficiaries *string        `gorm:"size:200" json:"targetBeneficiaries,omitempty"`
	StartDate           *time.Time     `gorm:"type:date" json:"startDate,omitempty"`
	EndDate             *time.Time     `gorm:"type:date" json:"endDate,omitempty"`
	Budget              *float64       `gorm:"type:decimal(12,2)" json:"budget,omitempty"`
	CurrentFunding      float64        `gorm:"type:decimal(12,2);not null;default:0" json:"currentFunding"`
	Images              datatypes.JSON `json:"images,omitempty"`
	Documents           datatypes.JSON `json:"documents,omitempty"`
	ContactPerson       *string        `gorm:"size:100" json:"contactPerson,omitempty"`
	ContactInfo         datatypes.JSON `json:"contactInfo,omitempty"`
	Status              string         `gorm:"size:20;not null;default:'planning'" json:"status"`
	IsActive            bool           `gorm:"not null;default:true" json:"isActive"`
	SortOrder           int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

type CreateProjectRequest struct {
	Name                string         `json:"name" validate:"required,max=200"`
	Description         string         `json:"description" validate:"required"`
	Category            string         `json:"category" validate:"required,oneof=blood_bank educational_resources food_distribution vedic_sanskrit_education goshala help_people medical_assistance yoga_classes book_bank others"`
	Objective           *string        `json:"objective"`
	TargetBeneficiaries *string        `json:"targetBeneficiaries" validate:"omitempty,max=200"`
	StartDate           *time.Time     `json:"startDate"`
	EndDate             *time.Time     `json:"endDate"`
	Budget              *float64       `json:"budget" validate:"omitempty,gte=0"`
	CurrentFunding      *float64       `json:"currentFunding" validate:"omitempty,gte=0"`
	Images              datatypes.JSON `json:"images"`
	Documents           datatypes.JSON `json:"documents"`
	ContactPerson       *string        `json:"contactPerson" validate:"omitempty,max=100"`
	ContactInfo         datatypes.JSON `json:"contactInfo"`
	Status              *string        `json:"status" validate:"omitempty,oneof=planning active completed suspended"`
	IsActive            *bool          `json:"isActive"`
	SortOrder           *int           `json:"sortOrder"`
}

type UpdateProjectRequest struct {
	Name                *string        `json:"name" validate:"omitempty,max=200"`
	Description         *string        `json:"description"`
	Category            *string        `json:"category" validate:"omitempty,oneof=blood_bank educational_resources food_distribution vedic_sanskrit_education goshala help_people medical_assistance yoga_classes book_bank others"`
	Objective           *string        `json:"objective"`
	TargetBeneficiaries *string        `json:"targetBeneficiaries" validate:"omitempty,max=200"`
	StartDate           *time.Time     `json:"startDate"`
	EndDate             *time.Time     `json:"endDate"`
	Budget              *float64       `json:"budget" validate:"omitempty,gte=0"`
	CurrentFunding      *float64       `json:"currentFunding" validate:"omitempty,gte=0"`
	Images              datatypes.JSON `json:"images"`
	Documents           datatypes.JSON `json:"documents"`
	ContactPerson       *string        `json:"contactPerson" validate:"omitempty,max=100"`
	ContactInfo         datatypes.JSON `json:"contactInfo"`
	Status              *string        `json:"status" validate:"omitempty,oneof=planning active completed suspended"`
	IsActive            *bool          `json:"isActive"`
	SortOrder           *int           `json:"sortOrder"`
}

type ListResponse struct {
	Projects   []Project   `json:"projects"`
	Pagination interface{} `json:"pagination"`
}

package governance

import (
	"time"

	"gorm.io/datatypes"
)

// Document is a governance record (policy, procedure, compliance note)
// versioned by the Version string.
type Document struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Category      string         `gorm:"size:30;not null;index" json:"category"`
	Content       *string        `gorm:"type:text" json:"content,omitempty"`
	Documents     datatypes.JSON `json:"documents,omitempty"`
	EffectiveDate *time.Time     `gorm:"type:date" json:"effectiveDate,omitempty"`
	Version       string         `gorm:"size:10;not null;default:'1.0'" json:"version"`
	IsActive      bool           `gorm:"not null;default:true" json:"isActive"`
	SortOrder     int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Document) TableName() string {
	return "governance"
}

type CreateDocumentRequest struct {
	Title         string         `json:"title" validate:"required,max=200"`
	Description   string         `json:"description" validate:"required"`
	Category      string         `json:"category" validate:"required,oneof=trustee_responsibilities policies procedures guidelines compliance others"`
	Content       *string        `json:"content"`
	Documents     datatypes.JSON `json:"documents"`
	EffectiveDate *time.Time     `json:"effectiveDate"`
	Version       *string        `json:"version" validate:"omitempty,max=10"`
	IsActive      *bool          `json:"isActive"`
	SortOrder     *int           `json:"sortOrder"`
}

type UpdateDocumentRequest struct {
	Title         *string        `json:"title" validate:"omitempty,max=200"`
	Description   *string        `json:"description"`
	Category      *string        `json:"category" validate:"omitempty,oneof=trustee_responsibilities policies procedures guidelines compliance others"`
	Content       *string        `json:"content"`
	Documents     datatypes.JSON `json:"documents"`
	EffectiveDate *time.Time     `json:"effectiveDate"`
	Version       *string        `json:"version" validate:"omitempty,max=10"`
	IsActive      *bool          `json:"isActive"`
	SortOrder     *int           `json:"sortOrder"`
}

type ListResponse struct {
	Documents  []Document  `json:"documents"`
	Pagination interface{} `json:"pagination"`
}

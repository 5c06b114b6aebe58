package temple

import (
	"time"

	"gorm.io/datatypes"
)

// Info is a content section of the temple page, grouped by category and
// ordered by SortOrder within it.
type Info struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Category    string         `gorm:"size:30;not null;index" json:"category"`
	Content     *string        `gorm:"type:text" json:"content,omitempty"`
	Images      datatypes.JSON `json:"images,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	ContactInfo datatypes.JSON `json:"contactInfo,omitempty"`
	Timing      datatypes.JSON `json:"timing,omitempty"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Info) TableName() string {
	return "temple_info"
}

type CreateInfoRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Description string         `json:"description" validate:"required"`
	Category    string         `json:"category" validate:"required,oneof=about schedule activities architecture gallery directions important_dates"`
	Content     *string        `json:"content"`
	Images      datatypes.JSON `json:"images"`
	Address     *string        `json:"address"`
	ContactInfo datatypes.JSON `json:"contactInfo"`
	Timing      datatypes.JSON `json:"timing"`
	IsActive    *bool          `json:"isActive"`
	SortOrder   *int           `json:"sortOrder"`
}

type UpdateInfoRequest struct {
	Title       *string        `json:"title" validate:"omitempty,max=200"`
	Description *string        `json:"description"`
	Category    *string        `json:"category" validate:"omitempty,oneof=about schedule activities architecture gallery directions important_dates"`
	Content     *string        `json:"content"`
	Images      datatypes.JSON `json:"images"`
	Address     *string        `json:"address"`
	ContactInfo datatypes.JSON `json:"contactInfo"`
	Timing      datatypes.JSON `json:"timing"`
	IsActive    *bool          `json:"isActive"`
	SortOrder   *int           `json:"sortOrder"`
}

type ListResponse struct {
	Sections   []Info      `json:"sections"`
	Pagination interface{} `json:"pagination"`
}

package elibrary

import (
	"time"

	"gorm.io/datatypes"
)

// Entry is a digital library item. DownloadCount is incremented through
// the download endpoint, never set directly by clients.
type Entry struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Author          *string        `gorm:"size:100" json:"author,omitempty"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	Category        string         `gorm:"size:30;not null;index" json:"category"`
	Language        *string        `gorm:"size:50" json:"language,omitempty"`
	Format          string         `gorm:"size:10;not null" json:"format"`
	FilePath        string         `gorm:"size:500;not null" json:"filePath"`
	FileSize        *int64         `json:"fileSize,omitempty"`
	ThumbnailPath   *string        `gorm:"size:255" json:"thumbnailPath,omitempty"`
	ISBN            *string        `gorm:"size:20;column:isbn" json:"isbn,omitempty"`
	PublicationYear *int           `json:"publicationYear,omitempty"`
	Publisher       *string        `gorm:"size:100" json:"publisher,omitempty"`
	Tags            datatypes.JSON `json:"tags,omitempty"`
	DownloadCount   int64          `gorm:"not null;default:0" json:"downloadCount"`
	IsActive        bool           `gorm:"not null;default:true" json:"isActive"`
	SortOrder       int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Entry) TableName() string {
	return "elibrary"
}

type CreateEntryRequest struct {
	Title           string         `json:"title" validate:"required,max=200"`
	Author          *string        `json:"author" validate:"omitempty,max=100"`
	Description     *string        `json:"description"`
	Category        string         `json:"category" validate:"required,oneof=puranas vedic_texts spiritual_books social_welfare economics philosophy others"`
	Language        *string        `json:"language" validate:"omitempty,max=50"`
	Format          string         `json:"format" validate:"required,oneof=pdf epub audio video"`
	FilePath        string         `json:"filePath" validate:"required,max=500"`
	FileSize        *int64         `json:"fileSize" validate:"omitempty,gte=0"`
	ThumbnailPath   *string        `json:"thumbnailPath" validate:"omitempty,max=255"`
	ISBN            *string        `json:"isbn" validate:"omitempty,max=20"`
	PublicationYear *int           `json:"publicationYear" validate:"omitempty,gte=0"`
	Publisher       *string        `json:"publisher" validate:"omitempty,max=100"`
	Tags            datatypes.JSON `json:"tags"`
	SortOrder       *int           `json:"sortOrder"`
}

type UpdateEntryRequest struct {
	Title           *string        `json:"title" validate:"omitempty,max=200"`
	Author          *string        `json:"author" validate:"omitempty,max=100"`
	Description     *string        `json:"description"`
	Category        *string        `json:"category" validate:"omitempty,oneof=puranas vedic_texts spiritual_books social_welfare economics philosophy others"`
	Language        *string        `json:"language" validate:"omitempty,max=50"`
	Format          *string        `json:"format" validate:"omitempty,oneof=pdf epub audio video"`
	ThumbnailPath   *string        `json:"thumbnailPath" validate:"omitempty,max=255"`
	ISBN            *string        `json:"isbn" validate:"omitempty,max=20"`
	PublicationYear *int           `json:"publicationYear" validate:"omitempty,gte=0"`
	Publisher       *string        `json:"publisher" validate:"omitempty,max=100"`
	Tags            datatypes.JSON `json:"tags"`
	IsActive        *bool          `json:"isActive"`
	SortOrder       *int           `json:"sortOrder"`
}

type ListResponse struct {
	Entries    []Entry     `json:"entries"`
	Pagination interface{} `json:"pagination"`
}

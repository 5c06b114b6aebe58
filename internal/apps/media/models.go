package media

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TypeImage    = "image"
	TypeVideo    = "video"
	TypeAudio    = "audio"
	TypeDocument = "document"
)

// Media is an uploaded asset plus its gallery metadata. FilePath is the
// on-disk location; the public URL is derived from it.
type Media struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Type        string         `gorm:"size:10;not null;index" json:"type"`
	FileName    string         `gorm:"size:255;not null" json:"fileName"`
	FilePath    string         `gorm:"size:500;not null" json:"filePath"`
	FileSize    *int64         `json:"fileSize,omitempty"`
	MimeType    *string        `gorm:"size:100" json:"mimeType,omitempty"`
	Category    *string        `gorm:"size:50" json:"category,omitempty"`
	CategoryID  *string        `gorm:"size:50" json:"categoryId,omitempty"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Media) TableName() string {
	return "media"
}

type CreateMediaRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Description *string        `json:"description"`
	Type        string         `json:"type" validate:"required,oneof=image video audio document"`
	FileName    string         `json:"fileName" validate:"required,max=255"`
	FilePath    string         `json:"filePath" validate:"required,max=500"`
	FileSize    *int64         `json:"fileSize" validate:"omitempty,gte=0"`
	MimeType    *string        `json:"mimeType" validate:"omitempty,max=100"`
	Category    *string        `json:"category" validate:"omitempty,max=50"`
	CategoryID  *string        `json:"categoryId" validate:"omitempty,max=50"`
	Tags        datatypes.JSON `json:"tags"`
	Metadata    datatypes.JSON `json:"metadata"`
	SortOrder   *int           `json:"sortOrder"`
}

type UpdateMediaRequest struct {
	Title       *string        `json:"title" validate:"omitempty,max=200"`
	Description *string        `json:"description"`
	Category    *string        `json:"category" validate:"omitempty,max=50"`
	CategoryID  *string        `json:"categoryId" validate:"omitempty,max=50"`
	Tags        datatypes.JSON `json:"tags"`
	Metadata    datatypes.JSON `json:"metadata"`
	IsActive    *bool          `json:"isActive"`
	SortOrder   *int           `json:"sortOrder"`
}

type ListResponse struct {
	Media      []Media     `json:"media"`
	Pagination interface{} `json:"pagination"`
}

package team

import (
	"time"

	"gorm.io/datatypes"
)

type Member struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Designation string         `gorm:"size:100;not null" json:"designation"`
	Department  *string        `gorm:"size:100" json:"department,omitempty"`
	Bio         *string        `gorm:"type:text" json:"bio,omitempty"`
	Photo       *string        `gorm:"size:255" json:"photo,omitempty"`
	Email       *string        `gorm:"size:100" json:"email,omitempty"`
	Phone       *string        `gorm:"size:15" json:"phone,omitempty"`
	Skills      datatypes.JSON `json:"skills,omitempty"`
	Experience  *string        `gorm:"type:text" json:"experience,omitempty"`
	SocialLinks datatypes.JSON `json:"socialLinks,omitempty"`
	JoinedDate  *time.Time     `gorm:"type:date" json:"joinedDate,omitempty"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Member) TableName() string {
	return "team_members"
}

type CreateMemberRequest struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Designation string         `json:"designation" validate:"required,max=100"`
	Department  *string        `json:"department" validate:"omitempty,max=100"`
	Bio         *string        `json:"bio"`
	Photo       *string        `json:"photo" validate:"omitempty,max=255"`
	Email       *string        `json:"email" validate:"omitempty,email,max=100"`
	Phone       *string        `json:"phone" validate:"omitempty,max=15"`
	Skills      datatypes.JSON `json:"skills"`
	Experience  *string        `json:"experience"`
	SocialLinks datatypes.JSON `json:"socialLinks"`
	JoinedDate  *time.Time     `json:"joinedDate"`
	IsActive    *bool          `json:"isActive"`
	SortOrder   *int           `json:"sortOrder"`
}

type UpdateMemberRequest struct {
	Name        *string        `json:"name" validate:"omitempty,max=100"`
	Designation *string        `json:"designation" validate:"omitempty,max=100"`
	Department  *string        `json:"department" validate:"omitempty,max=100"`
	Bio         *string        `json:"bio"`
	Photo       *string        `json:"photo" validate:"omitempty,max=255"`
	Email       *string        `json:"email" validate:"omitempty,email,max=100"`
	Phone       *string        `json:"phone" validate:"omitempty,max=15"`
	Skills      datatypes.JSON `json:"skills"`
	Experience  *string        `json:"experience"`
	SocialLinks datatypes.JSON `json:"socialLinks"`
	JoinedDate  *time.Time     `json:"joinedDate"`
	IsActive    *bool          `json:"isActive"`
	SortOrder   *int           `json:"sortOrder"`
}

type ListResponse struct {
	Members    []Member    `json:"members"`
	Pagination interface{} `json:"pagination"`
}

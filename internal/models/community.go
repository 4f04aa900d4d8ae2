package models

import "time"

type Community struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatorID *string   `gorm:"type:text" json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership model - a user's subscription to a community
type Membership struct {
	UserID      string    `gorm:"primaryKey;type:text" json:"user_id"`
	CommunityID string    `gorm:"primaryKey;type:text" json:"community_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Community   Community `gorm:"foreignKey:CommunityID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateCommunityRequest struct {
	Name string `json:"name" binding:"required,min=3,max=21"`
}

type MembershipRequest struct {
	CommunityID string `json:"communityId" binding:"required"`
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (c *Community) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}

package models

import (
	"time"
)

// Account represents an authenticated principal. Every patient, doctor and
// mapping carries a reference to the account that created it.
type Account struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:150;not null;unique;index;column:username" json:"username"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"date_joined"`

	Patients []Patient              `gorm:"foreignKey:CreatedByID;references:ID" json:"-"`
	Doctors  []Doctor               `gorm:"foreignKey:CreatedByID;references:ID" json:"-"`
	Mappings []PatientDoctorMapping `gorm:"foreignKey:CreatedByID;references:ID" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// Profile is the read shape returned by the profile endpoint. Username and
// join date are read-only to the caller.
type Profile struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	DateJoined time.Time `json:"date_joined"`
}

// ToProfile strips the credential and the active flag from an account.
func (a *Account) ToProfile() Profile {
	return Profile{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Username:   a.Username,
		DateJoined: a.CreatedAt,
	}
}

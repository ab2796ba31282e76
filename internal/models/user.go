package models

import "time"

// User maps the 'users' table. Email and phone are pointers so that an
// absent contact stays NULL and never collides on the unique indexes.
type User struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:254;not null" json:"nom"`
	Sex          string  `gorm:"size:1;not null" json:"sexe"`
	BirthDate    string  `gorm:"type:date;not null" json:"dateNaissance"` // Format YYYY-MM-DD
	Email        *string `gorm:"size:254;uniqueIndex" json:"email,omitempty"`
	Phone        *string `gorm:"column:numero_telephone;size:254;uniqueIndex" json:"numeroTelephone,omitempty"`
	Province     string  `gorm:"size:254;not null" json:"province"`
	Commune      string  `gorm:"size:254;not null" json:"commune"`
	PasswordHash string  `gorm:"not null" json:"-"` // never serialized back to the client

	CreatedAt time.Time `json:"created_at"`

	Appointments []Appointment `gorm:"foreignKey:UserID" json:"rdvs,omitempty"`
}

// RegisterInput captures POST /user. At least one of email/phone must be
// present; that cross-field rule is checked in the handler.
type RegisterInput struct {
	Nom             string `json:"nom" binding:"required"`
	Sexe            string `json:"sexe" binding:"required,len=1"`
	DateNaissance   string `json:"dateNaissance" binding:"required,datetime=2006-01-02"`
	Email           string `json:"email" binding:"omitempty,email"`
	NumeroTelephone string `json:"numeroTelephone"`
	Province        string `json:"province" binding:"required"`
	Commune         string `json:"commune" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
}

// LoginInput captures the GET /user query string.
type LoginInput struct {
	Email           string `form:"email" binding:"omitempty,email"`
	NumeroTelephone string `form:"numeroTelephone"`
	Password        string `form:"password"`
}

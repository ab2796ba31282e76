package models

import "time"

// Appointment is the RDV record. All three foreign keys are resolved before
// the row is inserted, so a stored appointment always references existing rows.
type Appointment struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	PatientName string    `gorm:"size:254;not null" json:"nom"`
	Sex         string    `gorm:"size:1;not null" json:"sexe"`
	Contact     string    `gorm:"size:254" json:"contact,omitempty"`
	Province    string    `gorm:"size:254" json:"province,omitempty"`
	Commune     string    `gorm:"size:254" json:"commune,omitempty"`
	DateTime    time.Time `gorm:"not null" json:"dateTime"`

	HospitalID uint   `gorm:"not null" json:"-"`
	ServiceID  uint   `gorm:"not null" json:"-"`
	UserID     uint64 `gorm:"not null" json:"id_user"`

	CreatedAt time.Time `json:"created_at"`

	// Preloaded on listing so hospital/service names come back resolved
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"-"`
	Service  Service  `gorm:"foreignKey:ServiceID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Appointment) TableName() string {
	return "rdvs"
}

// CreateAppointmentInput is the single POST /rdv schema; contact, province and
// commune are independently optional.
type CreateAppointmentInput struct {
	Nom      string    `json:"nom" binding:"required"`
	Sexe     string    `json:"sexe" binding:"required,len=1"`
	Contact  string    `json:"contact"`
	Province string    `json:"province"`
	Commune  string    `json:"commune"`
	DateTime time.Time `json:"dateTime" binding:"required"`
	Hopital  string    `json:"hopital" binding:"required"`
	Service  string    `json:"service" binding:"required"`
	IDUser   uint64    `json:"id_user" binding:"required"`
}

package models

type Hospital struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:254;uniqueIndex;not null" json:"nom"`
	Address string `gorm:"size:254" json:"adresse,omitempty"`

	// many2many join table carries only the two foreign keys
	Services []*Service `gorm:"many2many:hospital_services" json:"services,omitempty"`
}

type CreateHospitalInput struct {
	Nom      string   `json:"nom" binding:"required"`
	Adresse  string   `json:"adresse"`
	Services []string `json:"services"`
}

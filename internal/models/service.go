package models

// Service names are stored trimmed and lowercased; listings under a hospital
// capitalize them on the way out.
type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:254;uniqueIndex;not null" json:"nom"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Hospitals []*Hospital `gorm:"many2many:hospital_services" json:"-"`
}

type CreateServiceInput struct {
	Nom         string `json:"nom" binding:"required"`
	Description string `json:"description" binding:"required"`
}

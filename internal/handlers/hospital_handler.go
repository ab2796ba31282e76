package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"medico-backend/internal/models"
	"medico-backend/pkg/utils"
)

type HospitalHandler struct {
	DB *gorm.DB
}

func NewHospitalHandler(db *gorm.DB) *HospitalHandler { return &HospitalHandler{DB: db} }

// List handles GET /hopital: every hospital mapped to the capitalized names
// of its linked services.
func (h *HospitalHandler) List(c *gin.Context) {
	var hospitals []models.Hospital
	if err := utils.RetryRead(func() error {
		return h.DB.Preload("Services").Find(&hospitals).Error
	}); err != nil {
		log.Error().Err(err).Str("op", "GET /hopital").Msg("list hospitals failed")
		utils.Message(c, http.StatusInternalServerError, "Could not list hospitals")
		return
	}

	out := make(map[string][]string, len(hospitals))
	for _, hospital := range hospitals {
		names := make([]string, 0, len(hospital.Services))
		for _, svc := range hospital.Services {
			names = append(names, utils.Capitalize(svc.Name))
		}
		out[hospital.Name] = names
	}

	c.JSON(http.StatusOK, gin.H{"hopitaux": out})
}

// Create handles POST /hopital. The hospital insert, the per-name service
// upserts and the links all commit together or not at all.
func (h *HospitalHandler) Create(c *gin.Context) {
	var input models.CreateHospitalInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Message(c, http.StatusBadRequest, "Hospital not provided correctly")
		return
	}

	hospital := models.Hospital{
		Name:    strings.TrimSpace(input.Nom),
		Address: input.Adresse,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hospital).Error; err != nil {
			return err
		}

		seen := make(map[string]bool, len(input.Services))
		for _, raw := range input.Services {
			name := utils.NormalizeName(raw)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true

			svc, err := getOrCreateService(tx, name)
			if err != nil {
				return err
			}
			if err := tx.Model(&hospital).Association("Services").Append(svc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Message(c, http.StatusConflict, "Hospital already exists")
			return
		}
		log.Error().Err(err).Str("op", "POST /hopital").Str("nom", input.Nom).
			Strs("services", input.Services).Msg("create hospital failed")
		utils.Message(c, http.StatusInternalServerError, "Could not create hospital")
		return
	}

	log.Info().Uint("hospital_id", hospital.ID).Msg("hospital created")
	utils.Message(c, http.StatusCreated, "Hospital created successfully")
}

// getOrCreateService upserts a service by its unique (normalized) name. A
// duplicate-key failure means a concurrent create won the race; resolve it by
// re-fetching, never as a hard error.
func getOrCreateService(tx *gorm.DB, name string) (*models.Service, error) {
	var svc models.Service
	err := tx.Where("name = ?", name).First(&svc).Error
	if err == nil {
		return &svc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc = models.Service{Name: name}
	if err := tx.Create(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err2 := tx.Where("name = ?", name).First(&svc).Error; err2 == nil {
				return &svc, nil
			}
		}
		return nil, err
	}
	return &svc, nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"medico-backend/internal/models"
	"medico-backend/pkg/utils"
)

type ServiceHandler struct {
	DB *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler { return &ServiceHandler{DB: db} }

// List handles GET /service: the full name->description catalogue.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := utils.RetryRead(func() error {
		return h.DB.Find(&services).Error
	}); err != nil {
		log.Error().Err(err).Str("op", "GET /service").Msg("list services failed")
		utils.Message(c, http.StatusInternalServerError, "Could not list services")
		return
	}

	out := make(map[string]string, len(services))
	for _, svc := range services {
		out[svc.Name] = svc.Description
	}

	c.JSON(http.StatusOK, gin.H{"services": out})
}

// Create handles POST /service. No uniqueness pre-check: the unique index on
// name decides, and a violation comes back as a conflict, not a server fault.
func (h *ServiceHandler) Create(c *gin.Context) {
	var input models.CreateServiceInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Message(c, http.StatusBadRequest, "Service not provided correctly")
		return
	}

	svc := models.Service{
		Name:        utils.NormalizeName(input.Nom),
		Description: input.Description,
	}
	if svc.Name == "" {
		utils.Message(c, http.StatusBadRequest, "Service not provided correctly")
		return
	}

	if err := h.DB.Create(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Message(c, http.StatusConflict, "Service already exists")
			return
		}
		log.Error().Err(err).Str("op", "POST /service").Str("nom", input.Nom).Msg("create service failed")
		utils.Message(c, http.StatusInternalServerError, "Could not create service")
		return
	}

	utils.Message(c, http.StatusCreated, "Service created successfully")
}

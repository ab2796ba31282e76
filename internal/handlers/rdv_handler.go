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

var (
	errHospitalNotFound = errors.New("hospital not found")
	errServiceNotFound  = errors.New("service not found")
	errUserNotFound     = errors.New("user not found")
)

type AppointmentHandler struct {
	DB *gorm.DB
}

func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler { return &AppointmentHandler{DB: db} }

// List handles GET /rdv?id_user=N: every appointment referencing that user,
// with hospital and service names resolved.
func (h *AppointmentHandler) List(c *gin.Context) {
	idParam := c.Query("id_user")
	if idParam == "" {
		utils.Message(c, http.StatusBadRequest, "id_user not provided")
		return
	}
	userID := utils.StringToUint64(idParam)
	if userID == 0 {
		utils.Message(c, http.StatusBadRequest, "id_user not provided correctly")
		return
	}

	var user models.User
	if err := utils.RetryRead(func() error {
		return h.DB.First(&user, userID).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("op", "GET /rdv").Uint64("id_user", userID).Msg("fetch user failed")
		utils.Message(c, http.StatusInternalServerError, "Could not list rdvs")
		return
	}

	var appointments []models.Appointment
	if err := utils.RetryRead(func() error {
		return h.DB.Preload("Hospital").Preload("Service").
			Where("user_id = ?", user.ID).Find(&appointments).Error
	}); err != nil {
		log.Error().Err(err).Str("op", "GET /rdv").Uint64("id_user", userID).Msg("list rdvs failed")
		utils.Message(c, http.StatusInternalServerError, "Could not list rdvs")
		return
	}

	out := make([]gin.H, 0, len(appointments))
	for _, rdv := range appointments {
		item := gin.H{
			"id":       rdv.ID,
			"nom":      rdv.PatientName,
			"sexe":     rdv.Sex,
			"dateTime": rdv.DateTime,
			"hopital":  rdv.Hospital.Name,
			"service":  rdv.Service.Name,
			"id_user":  rdv.UserID,
		}
		if rdv.Contact != "" {
			item["contact"] = rdv.Contact
		}
		if rdv.Province != "" {
			item["province"] = rdv.Province
		}
		if rdv.Commune != "" {
			item["commune"] = rdv.Commune
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"rdvs": out})
}

// Create handles POST /rdv. Hospital, service and user are resolved before
// the insert, all inside one transaction, so a failed lookup leaves no
// orphan row behind.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input models.CreateAppointmentInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Message(c, http.StatusBadRequest, "Rdv not provided correctly")
		return
	}

	var rdv models.Appointment
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var hospital models.Hospital
		if err := tx.Where("name = ?", strings.TrimSpace(input.Hopital)).First(&hospital).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errHospitalNotFound
			}
			return err
		}

		var service models.Service
		if err := tx.Where("name = ?", utils.NormalizeName(input.Service)).First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errServiceNotFound
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, input.IDUser).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errUserNotFound
			}
			return err
		}

		rdv = models.Appointment{
			PatientName: input.Nom,
			Sex:         input.Sexe,
			Contact:     input.Contact,
			Province:    input.Province,
			Commune:     input.Commune,
			DateTime:    input.DateTime,
			HospitalID:  hospital.ID,
			ServiceID:   service.ID,
			UserID:      user.ID,
		}
		return tx.Create(&rdv).Error
	})
	switch {
	case err == nil:
		log.Info().Uint64("rdv_id", rdv.ID).Uint64("id_user", rdv.UserID).Msg("rdv created")
		utils.Message(c, http.StatusCreated, "Rdv created successfully")
	case errors.Is(err, errHospitalNotFound):
		utils.Message(c, http.StatusNotFound, "Hospital not found")
	case errors.Is(err, errServiceNotFound):
		utils.Message(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, errUserNotFound):
		utils.Message(c, http.StatusNotFound, "User not found")
	default:
		log.Error().Err(err).Str("op", "POST /rdv").
			Str("hopital", input.Hopital).Str("service", input.Service).
			Uint64("id_user", input.IDUser).Msg("create rdv failed")
		utils.Message(c, http.StatusInternalServerError, "Could not create rdv")
	}
}

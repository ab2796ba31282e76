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

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler { return &UserHandler{DB: db} }

// Register handles POST /user.
func (h *UserHandler) Register(c *gin.Context) {
	var input models.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Message(c, http.StatusBadRequest, "User not provided correctly")
		return
	}

	// At least one way to contact (and later log in) is mandatory
	if input.Email == "" && input.NumeroTelephone == "" {
		log.Warn().Str("op", "POST /user").Msg("no contact info was provided")
		utils.Message(c, http.StatusBadRequest, "No contact info was provided")
		return
	}

	// One existence query per contact field, combined with OR
	exists := false
	if input.Email != "" {
		var n int64
		h.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&n)
		exists = exists || n > 0
	}
	if input.NumeroTelephone != "" {
		var n int64
		h.DB.Model(&models.User{}).Where("numero_telephone = ?", input.NumeroTelephone).Count(&n)
		exists = exists || n > 0
	}
	if exists {
		utils.Message(c, http.StatusConflict, "User already exists")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Error().Err(err).Str("op", "POST /user").Msg("password hashing failed")
		utils.Message(c, http.StatusInternalServerError, "Could not process password")
		return
	}

	user := models.User{
		Name:         input.Nom,
		Sex:          input.Sexe,
		BirthDate:    input.DateNaissance,
		Email:        optional(input.Email),
		Phone:        optional(input.NumeroTelephone),
		Province:     input.Province,
		Commune:      input.Commune,
		PasswordHash: hashed,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		// Concurrent registration racing on the same email/phone: the unique
		// index picked the winner, this request lost.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Message(c, http.StatusConflict, "User already exists")
			return
		}
		log.Error().Err(err).Str("op", "POST /user").Msg("insert user failed")
		utils.Message(c, http.StatusInternalServerError, "Could not create user")
		return
	}

	log.Info().Uint64("user_id", user.ID).Msg("user registered")
	utils.Message(c, http.StatusCreated, "User created successfully")
}

// Login handles GET /user: credential check by email or phone, token issuance
// and the service catalogue in one response.
func (h *UserHandler) Login(c *gin.Context) {
	var input models.LoginInput

	if err := c.ShouldBindQuery(&input); err != nil {
		utils.Message(c, http.StatusBadRequest, "User not provided correctly")
		return
	}

	if input.Email == "" && input.NumeroTelephone == "" {
		log.Warn().Str("op", "GET /user").Msg("no login info was provided")
		utils.Message(c, http.StatusBadRequest, "No login info was provided")
		return
	}
	if input.Password == "" {
		utils.Message(c, http.StatusBadRequest, "Password not provided")
		return
	}

	// Email match takes priority; phone is only consulted when email fails
	var user models.User
	found := false
	if input.Email != "" {
		if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err == nil {
			found = utils.CheckPassword(input.Password, user.PasswordHash)
		}
	}
	if !found && input.NumeroTelephone != "" {
		if err := h.DB.Where("numero_telephone = ?", input.NumeroTelephone).First(&user).Error; err == nil {
			found = utils.CheckPassword(input.Password, user.PasswordHash)
		}
	}
	if !found {
		log.Warn().Str("op", "GET /user").Msg("access denied")
		utils.Message(c, http.StatusUnauthorized, "Access denied")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Error().Err(err).Str("op", "GET /user").Msg("token generation failed")
		utils.Message(c, http.StatusInternalServerError, "Could not generate token")
		return
	}

	// The login response also advertises every known service
	var services []models.Service
	if err := utils.RetryRead(func() error {
		return h.DB.Find(&services).Error
	}); err != nil {
		log.Error().Err(err).Str("op", "GET /user").Msg("list services failed")
		utils.Message(c, http.StatusInternalServerError, "Could not list services")
		return
	}
	catalogue := make(map[string]string, len(services))
	for _, svc := range services {
		catalogue[svc.Name] = svc.Description
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"services":     catalogue,
		"access_token": token,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salespipe_backend/internals/configs"
	"salespipe_backend/internals/features/users/auth/dto"
	userModel "salespipe_backend/internals/features/users/user/model"
	helper "salespipe_backend/internals/helpers"
)

var validate = validator.New()

const tokenTTL = 12 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, "failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(in.UserName),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
		IsActive: true,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, http.StatusConflict, "email already registered")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "user registered", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctl.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(in.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if !user.IsActive {
		return helper.Error(c, http.StatusForbidden, "account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return helper.Error(c, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := signToken(user)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, "failed to sign token")
	}

	return helper.Success(c, "login ok", dto.LoginResponse{
		AccessToken: token,
		UserName:    user.UserName,
		Email:       user.Email,
	})
}

func signToken(user userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"exp":       time.Now().Add(tokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

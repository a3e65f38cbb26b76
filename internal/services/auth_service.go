package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mozhii/platform/internal/config"
	"github.com/mozhii/platform/internal/dto"
	"github.com/mozhii/platform/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// SeedAdmins upserts reviewer accounts from the ADMIN_USERS config value
// ("user1:bcrypthash,user2:bcrypthash").
func (s *AuthService) SeedAdmins() error {
	for _, entry := range strings.Split(s.cfg.AdminUsers, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("malformed ADMIN_USERS entry %q", entry)
		}
		var existing models.AdminUser
		err := s.db.Where("username = ?", parts[0]).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.db.Create(&models.AdminUser{Username: parts[0], PasswordHash: parts[1]}).Error; err != nil {
				return fmt.Errorf("failed to seed admin %q: %w", parts[0], err)
			}
			slog.Info("admin account seeded", "username", parts[0])
		} else if err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.AdminUser
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, Username: user.Username}, nil
}

func (s *AuthService) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.TokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

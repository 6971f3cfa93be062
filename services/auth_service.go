package services

import (
	"errors"
	"log"
	"regexp"

	"github.com/Massiue/HealthyMealPlanner/config"
	"github.com/Massiue/HealthyMealPlanner/models"
	"github.com/Massiue/HealthyMealPlanner/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Profile defaults for a fresh account, until the user fills in their
// metrics. Targets are derived from these instead of being hardcoded so the
// "targets always follow the metrics" invariant holds from day one.
const (
	defaultAge      = 25
	defaultGender   = "male"
	defaultWeightKg = 70.0
	defaultHeightCm = 175.0
	defaultActivity = "moderate"
)

func RegisterUser(name, email, password string) (*models.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = "New User"
	}
	user := models.User{
		Name:          name,
		Email:         email,
		Password:      hashed,
		Role:          models.RoleUser,
		Age:           defaultAge,
		Gender:        defaultGender,
		WeightKg:      defaultWeightKg,
		HeightCm:      defaultHeightCm,
		ActivityLevel: defaultActivity,
		Goal:          GoalMaintain,
	}
	RecomputeTargets(&user)

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	go func() {
		if err := utils.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("welcome email to %s failed: %v", user.Email, err)
		}
	}()

	return &user, nil
}

// AuthenticateUser checks the credentials and issues a JWT carrying the
// user's id, email and role. A wrong password triggers a security-alert
// email; a successful login triggers a login-alert email. Both are sent in
// the background and never block or fail the request.
func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		go func() {
			if err := utils.SendSecurityAlert(user.Email, user.Name); err != nil {
				log.Printf("security alert email to %s failed: %v", user.Email, err)
			}
		}()
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	go func() {
		if err := utils.SendLoginAlert(user.Email, user.Name); err != nil {
			log.Printf("login alert email to %s failed: %v", user.Email, err)
		}
	}()

	return token, &user, nil
}

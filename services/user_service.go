package services

import (
	"errors"
	"time"

	"github.com/gregorycarnegie/body-fat-calculator/config"
	"github.com/gregorycarnegie/body-fat-calculator/models"
	"github.com/gregorycarnegie/body-fat-calculator/utils"
)

type ProfileInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Birthday   string `json:"birthday"` // sent as YYYY-MM-DD
	Sex        string `json:"sex"`
	MFAEnabled *bool  `json:"mfa_enabled"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"id":          user.ID,
		"user_id":     user.UserID,
		"email":       user.Email,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"birthday":    user.Birthday.Format("2006-01-02"),
		"age":         age,
		"sex":         user.Sex,
		"mfa_enabled": user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}
	if models.Sex(input.Sex).Valid() {
		user.Sex = input.Sex
	}
	if input.MFAEnabled != nil {
		user.MFAEnabled = *input.MFAEnabled
	}

	return config.DB.Save(&user).Error
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

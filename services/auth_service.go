package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/gregorycarnegie/body-fat-calculator/config"
	"github.com/gregorycarnegie/body-fat-calculator/models"
	"github.com/gregorycarnegie/body-fat-calculator/utils"
)

func RegisterUser(email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	base := strings.ToLower(strings.ReplaceAll(firstName, " ", ""))
	userID := fmt.Sprintf("%s%d", base, rand.Intn(100000))

	user := models.User{
		UserID:    userID,
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Disabled:  false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

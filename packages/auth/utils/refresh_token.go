package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"auth/models"

	"gorm.io/gorm"
)

const RefreshTokenExpiry = 7 * 24 * time.Hour

// GenerateTokenPair issues an access token and a fresh refresh token,
// revoking the user's previous refresh tokens.
func GenerateTokenPair(db *gorm.DB, user models.User) (*models.TokenResponse, error) {
	accessToken, err := GenerateToken(user)
	if err != nil {
		return nil, err
	}

	refreshTokenString, err := generateSecureToken()
	if err != nil {
		return nil, err
	}

	db.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{})

	refreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().Add(RefreshTokenExpiry),
	}

	if err := db.Create(&refreshToken).Error; err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(AccessTokenExpiry.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new token pair,
// rotating the refresh token.
func RefreshAccessToken(db *gorm.DB, refreshTokenString string) (*models.TokenResponse, error) {
	var refreshToken models.RefreshToken

	if err := db.Preload("User").Where("token = ?", refreshTokenString).First(&refreshToken).Error; err != nil {
		return nil, err
	}

	if refreshToken.IsExpired() {
		db.Delete(&refreshToken)
		return nil, gorm.ErrRecordNotFound
	}

	accessToken, err := GenerateToken(refreshToken.User)
	if err != nil {
		return nil, err
	}

	newRefreshTokenString, err := generateSecureToken()
	if err != nil {
		return nil, err
	}

	refreshToken.Token = newRefreshTokenString
	refreshToken.ExpiresAt = time.Now().Add(RefreshTokenExpiry)
	db.Save(&refreshToken)

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshTokenString,
		ExpiresIn:    int64(AccessTokenExpiry.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// RevokeRefreshToken revokes a single refresh token
func RevokeRefreshToken(db *gorm.DB, refreshTokenString string) error {
	return db.Where("token = ?", refreshTokenString).Delete(&models.RefreshToken{}).Error
}

// RevokeAllUserTokens revokes every refresh token of a user
func RevokeAllUserTokens(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

// CleanExpiredTokens removes expired refresh tokens
func CleanExpiredTokens(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}

func generateSecureToken() (string, error) {
	bytes := make([]byte, 32) // 256 bits
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

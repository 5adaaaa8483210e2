package util

import (
	"errors"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/config"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken 为指定用户名签发访问令牌
func GenerateToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken 校验令牌并返回其中的用户名
func ValidateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		username, ok := claims["sub"].(string)
		if !ok || username == "" {
			return "", errors.New("令牌缺少用户信息")
		}
		return username, nil
	}

	return "", errors.New("无效的令牌")
}

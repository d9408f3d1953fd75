package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt"
)

// RequireSecretKey vérifie au démarrage que SECRET_KEY est définie.
// Pas de valeur par défaut: un secret codé en dur n'est pas acceptable.
func RequireSecretKey() error {
	if os.Getenv("SECRET_KEY") == "" {
		return errors.New("SECRET_KEY environment variable is not set")
	}
	return nil
}

// GenerateToken émet un JWT HS256 portant user_id et role.
// Pas de claim d'expiration: le token reste valable tant qu'il est
// stocké sur la ligne utilisateur.
func GenerateToken(userID uint, role string) (string, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return "", errors.New("SECRET_KEY environment variable is not set")
	}

	claims := jwt.MapClaims{
		"user_id": strconv.FormatUint(uint64(userID), 10),
		"role":    role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// DecodeToken vérifie la signature et retourne les claims
func DecodeToken(tokenString string) (jwt.MapClaims, error) {
	secret := []byte(os.Getenv("SECRET_KEY"))

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

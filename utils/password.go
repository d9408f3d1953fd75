package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ne regarde que les 72 premiers octets du mot de passe
const bcryptMaxLen = 72

func truncatePassword(password string) []byte {
	pw := []byte(password)
	if len(pw) > bcryptMaxLen {
		pw = pw[:bcryptMaxLen]
	}
	return pw
}

// HashPassword hache un mot de passe avec bcrypt (salé, résultat non déterministe)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compare un mot de passe en clair avec un hash bcrypt.
// Retourne false sur un hash malformé, ne propage jamais d'erreur.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

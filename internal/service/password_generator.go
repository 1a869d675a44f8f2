package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	passwordLength = 12

	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "@#$%&*!"
)

// GeneratePassword builds a mentor account's initial password: one character
// from each class is guaranteed, the remainder is drawn uniformly from all
// classes, and the result is shuffled. Every draw uses crypto/rand.
func GeneratePassword() (string, error) {
	allChars := uppercaseChars + lowercaseChars + digitChars + symbolChars

	password := make([]byte, 0, passwordLength)
	for _, class := range []string{uppercaseChars, lowercaseChars, digitChars, symbolChars} {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < passwordLength {
		c, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates so the mandatory characters are not always in front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}
	return string(password), nil
}

func randomChar(charset string) (byte, error) {
	i, err := randomInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

func randomInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(n.Int64()), nil
}

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Character classes available to [GeneratePassword].
const (
	alphabetLower  = "abcdefghijklmnopqrstuvwxyz"
	alphabetUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabetDigits = "0123456789"
	alphabetSymbol = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// PasswordPolicy selects the character classes a generated password draws
// from. The zero value is not usable; at least one class must be enabled.
type PasswordPolicy struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordPolicy is 20 characters over all four classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{Length: 20, Lower: true, Upper: true, Digits: true, Symbols: true}
}

// GeneratePassword produces a random password from the policy's alphabet
// using the OS CSPRNG via [crypto/rand.Int], which samples without modulo
// bias. Every enabled class contributes at least one character (as many as
// the length allows). Returns ErrRandomSourceUnavailable if the random
// source fails and an ordinary error for an unusable policy.
func GeneratePassword(policy PasswordPolicy) (string, error) {
	if policy.Length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", policy.Length)
	}

	var classes []string
	if policy.Lower {
		classes = append(classes, alphabetLower)
	}
	if policy.Upper {
		classes = append(classes, alphabetUpper)
	}
	if policy.Digits {
		classes = append(classes, alphabetDigits)
	}
	if policy.Symbols {
		classes = append(classes, alphabetSymbol)
	}
	if len(classes) == 0 {
		return "", fmt.Errorf("password policy enables no character classes")
	}

	pool := strings.Join(classes, "")
	out := make([]byte, 0, policy.Length)

	for i := 0; i < len(classes) && i < policy.Length; i++ {
		c, err := randomByte(classes[i])
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	for len(out) < policy.Length {
		c, err := randomByte(pool)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates, so the per-class characters are not pinned to the front.
	for i := len(out) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
		}
		j := n.Int64()
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func randomByte(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return alphabet[n.Int64()], nil
}

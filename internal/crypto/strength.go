// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package crypto

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// StrengthReport is the advisory result of [EstimateStrength]. Score is a
// 0..100 heuristic, not a cryptographic guarantee; Feedback lists concrete
// weaknesses in the order they were detected.
type StrengthReport struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// Approximate alphabet sizes per character class, used for the entropy
// estimate length * log2(charsetSize).
const (
	charsetLower  = 26
	charsetUpper  = 26
	charsetDigit  = 10
	charsetSymbol = 33
)

// commonSubstrings is a small denylist of fragments that show up in nearly
// every breached-password corpus. Matching is case-insensitive.
var commonSubstrings = []string{
	"password",
	"qwerty",
	"123456",
	"letmein",
	"welcome",
	"admin",
	"iloveyou",
	"dragon",
	"monkey",
	"abc123",
	"111111",
}

// EstimateStrength scores a candidate password on a 0..100 scale.
//
// The score combines length tiers, the number of distinct character classes
// used, and an entropy estimate bucketed into bands, then subtracts
// penalties for sequential runs ("abcd", "4321"), repeated-character runs
// ("aaa"), and known-common substrings. Total and deterministic: every
// string input, including the empty string, produces a report and the same
// input always produces the same report.
func EstimateStrength(password string) StrengthReport {
	if password == "" {
		return StrengthReport{
			Score:    0,
			Feedback: []string{"password is empty"},
		}
	}

	runes := []rune(password)
	feedback := make([]string, 0, 4)

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	charset := 0
	classes := 0
	for _, c := range []struct {
		present bool
		size    int
	}{
		{hasLower, charsetLower},
		{hasUpper, charsetUpper},
		{hasDigit, charsetDigit},
		{hasSymbol, charsetSymbol},
	} {
		if c.present {
			charset += c.size
			classes++
		}
	}

	entropy := float64(len(runes)) * math.Log2(float64(charset))
	score := entropyBand(entropy)

	// Length tiers on top of the entropy band.
	switch {
	case len(runes) < 8:
		score -= 20
		feedback = append(feedback, "use at least 8 characters")
	case len(runes) >= 16:
		score += 10
	case len(runes) >= 12:
		score += 5
	}

	if classes < 3 {
		score -= (3 - classes) * 10
		feedback = append(feedback, "mix lowercase, uppercase, digits and symbols")
	}

	if n := longestSequentialRun(runes); n >= 3 {
		score -= 15
		feedback = append(feedback, fmt.Sprintf("avoid sequential runs of %d characters", n))
	}

	if n := longestRepeatRun(runes); n >= 3 {
		score -= 15
		feedback = append(feedback, fmt.Sprintf("avoid repeating the same character %d times", n))
	}

	lowered := strings.ToLower(password)
	for _, common := range commonSubstrings {
		if strings.Contains(lowered, common) {
			score -= 30
			feedback = append(feedback, fmt.Sprintf("contains a common pattern: %q", common))
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return StrengthReport{Score: score, Feedback: feedback}
}

// entropyBand buckets an entropy estimate (in bits) into a base score.
func entropyBand(bits float64) int {
	switch {
	case bits < 28:
		return 10
	case bits < 36:
		return 30
	case bits < 60:
		return 50
	case bits < 80:
		return 70
	case bits < 100:
		return 85
	default:
		return 95
	}
}

// longestSequentialRun returns the length of the longest run of characters
// that step by exactly +1 or -1 ("abcd", "9876"). Case-insensitive so
// "aBcD" still counts.
func longestSequentialRun(runes []rune) int {
	if len(runes) < 2 {
		return len(runes)
	}

	longest, run, dir := 1, 1, 0
	prev := unicode.ToLower(runes[0])
	for _, r := range runes[1:] {
		cur := unicode.ToLower(r)
		step := int(cur) - int(prev)
		if (step == 1 || step == -1) && (dir == 0 || dir == step) {
			run++
			dir = step
		} else if step == 1 || step == -1 {
			run = 2
			dir = step
		} else {
			run = 1
			dir = 0
		}
		if run > longest {
			longest = run
		}
		prev = cur
	}

	return longest
}

// longestRepeatRun returns the length of the longest run of one identical
// character.
func longestRepeatRun(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return longest
}

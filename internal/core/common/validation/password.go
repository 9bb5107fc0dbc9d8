package validation

import (
	"fmt"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// commonPasswords is a trimmed list of the most frequent leaked passwords.
// Matching is case-insensitive.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"qwerty": {}, "qwerty123": {}, "qwertyuiop": {}, "asdfghjkl": {}, "zxcvbnm": {},
	"abc123": {}, "abcd1234": {}, "iloveyou": {}, "welcome": {}, "welcome1": {},
	"monkey": {}, "dragon": {}, "sunshine": {}, "princess": {}, "football": {},
	"baseball": {}, "superman": {}, "batman": {}, "letmein": {}, "trustno1": {},
	"master": {}, "shadow": {}, "michael": {}, "jennifer": {}, "charlie": {},
	"admin": {}, "admin123": {}, "root": {}, "login": {}, "secret": {},
	"whatever": {}, "starwars": {}, "pokemon": {}, "computer": {}, "internet": {},
	"freedom": {}, "cheese": {}, "summer": {}, "winter": {}, "hello123": {},
}

// ValidatePassword enforces the account password policy: minimum length,
// not entirely numeric, not a known common password, and not too similar to
// the user's own identifying attributes. All failures for the field are
// returned joined, matching the field envelope convention.
func ValidatePassword(password string, userAttributes ...string) []string {
	var msgs []string

	if len(password) < minPasswordLength {
		msgs = append(msgs, fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength))
	}

	if password != "" && isEntirelyNumeric(password) {
		msgs = append(msgs, "This password is entirely numeric.")
	}

	if _, found := commonPasswords[strings.ToLower(password)]; found {
		msgs = append(msgs, "This password is too common.")
	}

	if attr := similarAttribute(password, userAttributes); attr != "" {
		msgs = append(msgs, fmt.Sprintf("The password is too similar to the %s.", attr))
	}

	return msgs
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// attributeNames must stay aligned with the order callers pass attributes in:
// email, username, first name, last name.
var attributeNames = []string{"email", "username", "first name", "last name"}

func similarAttribute(password string, attributes []string) string {
	lower := strings.ToLower(password)
	for i, attr := range attributes {
		if attr == "" {
			continue
		}
		name := "user attribute"
		if i < len(attributeNames) {
			name = attributeNames[i]
		}
		// compare against the whole attribute and its word parts, so
		// "john.doe@mail.com" also catches passwords built from "john"
		parts := strings.FieldsFunc(strings.ToLower(attr), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, candidate := range append(parts, strings.ToLower(attr)) {
			if len(candidate) < 4 {
				continue
			}
			if similarity(lower, candidate) >= 0.7 {
				return name
			}
		}
	}
	return ""
}

// similarity is a ratio in [0,1] based on edit distance, close enough to the
// sequence-matcher ratio the policy was originally defined with.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := true
	runes := []rune(raw)
	for i, r := range runes {
		// A minus directly in front of a digit at the start of a word is a sign.
		if r == '-' && lastSpace && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == ',' || r == ';' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	fields := strings.Fields(normalised)
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, ok := numberWords[token]; ok {
		return &Quantity{Raw: token, N: n}
	}
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return &Quantity{Raw: token, N: n}
	}
	return nil
}

// isNumber accepts finite decimal numbers only; "nan", "inf" and overflowing values are words.
func isNumber(token string) bool {
	v, err := strconv.ParseFloat(token, 64)
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiller(token string) bool {
	switch token {
	case "to", "at", "the", "a", "an", "my", "our", "some", "more", "new", "please", "towards", "toward":
		return true
	default:
		return false
	}
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "those", "another", "again":
		return true
	default:
		return false
	}
}

// singular strips a plural suffix: "knights" -> "knight", "catapults" -> "catapult".
func singular(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return strings.TrimSuffix(token, "s")
	}
	return token
}

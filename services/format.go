package services

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// fixed formats v with exactly dec decimals.
func fixed(v float64, dec int) string {
	return strconv.FormatFloat(v, 'f', dec, 64)
}

// percent renders a ratio as a percentage, e.g. 0.983 -> "98.3%".
func percent(v float64, dec int) string {
	return fixed(v*100, dec) + "%"
}

// grouped rounds v to a whole number and inserts thousands separators.
func grouped(v float64) string {
	s := fixed(v, 0)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sign + sb.String()
}

// plain prints a user-entered number the way it reads back: shortest form,
// always with a decimal part ("400" -> "400.0", "3.25" -> "3.25").
func plain(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	// magnitudes outside [1e-4, 1e16) switch to exponent form, e.g. 1e+16
	if v != 0 {
		e := strconv.FormatFloat(v, 'e', -1, 64)
		exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// titleWords turns "rural_agricultural" into "Rural Agricultural".
func titleWords(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// spaced turns "rural_agricultural" into "rural agricultural".
func spaced(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

package parser

import (
	"regexp"
	"strings"
	"time"
)

// clock hook for the current-date fallback policy.
var now = time.Now

const dateLayout = "02-01-2006"

// Lines splits raw document text into trimmed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// firstMatch returns the first submatch of re in text (the full match when the
// pattern has no capture group), trimmed. Empty string when nothing matches.
func firstMatch(re *regexp.Regexp, text string) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[0])
}

// NormalizeWeight converts a raw weight or volume value ("1.234,5 kg",
// "1234,5") to a plain decimal string with a period separator. Returns "0"
// when no numeric content is present.
func NormalizeWeight(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "0"
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		} else if b.Len() > 0 {
			break
		}
	}
	value := b.String()
	if value == "" {
		return "0"
	}

	// "1.234,5" carries a thousands period; "1234.5" does not.
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.Replace(value, ",", ".", 1)
	}
	value = strings.Trim(value, ".")
	if value == "" {
		return "0"
	}
	return value
}

var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	"01/02/06",
	"2 January 2006",
}

// NormalizeDate parses a raw date in any of the accepted source formats and
// renders it as dd-mm-yyyy. The second return reports whether parsing
// succeeded; the caller decides between a blank date and the current-date
// fallback, that policy is per carrier format.
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

// BoolString renders a boolean in the downstream dialect.
func BoolString(v bool) string {
	if v {
		return "Waar"
	}
	return "Onwaar"
}

var unNumberRe = regexp.MustCompile(`\bUN\s?(\d{4})\b`)

var hazardMarkers = []string{"ADR", "IMO", "IMDG", "LITHIUM", "HAZARDOUS"}

// DetectHazard scans the line set for hazardous-cargo markers. Returns the
// flag and the UN number when one is present.
func DetectHazard(lines []string) (bool, string) {
	for _, line := range lines {
		if m := unNumberRe.FindStringSubmatch(line); m != nil {
			return true, "UN" + m[1]
		}
		upper := strings.ToUpper(line)
		for _, marker := range hazardMarkers {
			if containsWord(upper, marker) {
				return true, ""
			}
		}
	}
	return false, ""
}

func containsWord(line, word string) bool {
	idx := strings.Index(line, word)
	for idx >= 0 {
		before := idx == 0 || !isWordRune(rune(line[idx-1]))
		afterIdx := idx + len(word)
		after := afterIdx >= len(line) || !isWordRune(rune(line[afterIdx]))
		if before && after {
			return true
		}
		next := strings.Index(line[idx+1:], word)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

func isWordRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

var postcodeNLRe = regexp.MustCompile(`\b(\d{4}\s?[A-Z]{2})\b`)

// splitAddressLine breaks a single-line address ("Kaai 12, Havenstraat 1,
// 3089 JB Rotterdam, NL") into name, street, postcode, city and country.
// Missing parts stay blank; the raw value is never discarded, the first
// segment always becomes the name.
func splitAddressLine(raw string) (name, address, postcode, city, country string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name = parts[0]
	rest := parts[1:]

	for _, part := range rest {
		if part == "" {
			continue
		}
		if m := postcodeNLRe.FindStringSubmatchIndex(part); m != nil {
			postcode = strings.TrimSpace(part[m[2]:m[3]])
			city = strings.TrimSpace(part[m[3]:])
			continue
		}
		if len(part) == 2 && part == strings.ToUpper(part) {
			country = part
			continue
		}
		if address == "" {
			address = part
		} else if city == "" {
			city = part
		}
	}
	return
}

package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Human duration strings. "30s", "5m", "2h", "1d" and concatenations
// like "1d12h" parse to seconds; bare digits are seconds; "" and the
// disable keywords mean disabled (0).

var (
	durationSegmentRe = regexp.MustCompile(`^(\d+)([smhd])`)
	durationDigitsRe  = regexp.MustCompile(`^\d+$`)

	errBadDuration = fmt.Errorf("invalid duration: use formats like 30s, 5m, 2h, or 1d")
)

var durationUnits = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

var disableKeywords = map[string]bool{
	"":         true,
	"0":        true,
	"none":     true,
	"off":      true,
	"disable":  true,
	"disabled": true,
}

// ParseDurationSeconds converts a human duration string to seconds.
// 0 means disabled. A leading "-" is always rejected.
func ParseDurationSeconds(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	if disableKeywords[s] {
		return 0, nil
	}
	if strings.HasPrefix(s, "-") {
		return 0, errBadDuration
	}
	if durationDigitsRe.MatchString(s) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errBadDuration
		}
		return v, nil
	}

	var total int64
	rest := s
	for len(rest) > 0 {
		m := durationSegmentRe.FindStringSubmatch(rest)
		if m == nil {
			return 0, errBadDuration
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, errBadDuration
		}
		total += v * durationUnits[m[2]]
		rest = rest[len(m[0]):]
	}
	return total, nil
}

// FormatSeconds renders seconds as a largest-unit-first breakdown.
// Zero renders as "disabled".
func FormatSeconds(total int64) string {
	if total == 0 {
		return "disabled"
	}

	var sb strings.Builder
	write := func(v int64, unit string) {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.FormatInt(v, 10))
		sb.WriteString(unit)
	}

	if d := total / 86400; d > 0 {
		write(d, "d")
	}
	if h := total % 86400 / 3600; h > 0 {
		write(h, "h")
	}
	if m := total % 3600 / 60; m > 0 {
		write(m, "m")
	}
	if s := total % 60; s > 0 || sb.Len() == 0 {
		write(s, "s")
	}
	return sb.String()
}

// parseGiveawayEnd resolves a giveaway end time from either the
// duration grammar ("2h", "1d12h") or a natural-language expression
// ("tomorrow at noon").
func parseGiveawayEnd(input string, now time.Time) (time.Time, error) {
	if secs, err := ParseDurationSeconds(input); err == nil && secs > 0 {
		return now.Add(time.Duration(secs) * time.Second), nil
	}

	if giveawayEndParser != nil {
		if result, err := giveawayEndParser.ParseDate(input, now); err == nil && result != nil {
			return *result, nil
		}
	}

	return time.Time{}, errBadDuration
}

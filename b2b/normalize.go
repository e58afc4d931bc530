package b2b

import "strings"

// minorUnits converts a major-unit amount into integer minor units
// (e.g. rubles to kopecks). The gateway expects the same truncation the
// upstream contract defines: value * 100 cut toward zero, never rounded.
func minorUnits(major float64) int64 {
	return int64(major * 100)
}

// normalizePhone canonicalizes a phone number the way the gateway expects.
// Everything but digits and plus signs is stripped; a number without a
// leading "+" is treated as a Russian national number and rewritten as
// "+7" plus its last ten characters (or all of them when shorter).
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if strings.HasPrefix(s, "+") {
		return s
	}
	if len(s) > 10 {
		s = s[len(s)-10:]
	}
	return "+7" + s
}

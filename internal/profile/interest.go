package profile

import (
	"strings"
	"time"
)

// Interest is one of the fixed keywords that can drive the middle character.
type Interest string

const (
	InterestSports  Interest = "sports"
	InterestMusic   Interest = "music"
	InterestArt     Interest = "art"
	InterestReading Interest = "reading"
	InterestTravel  Interest = "travel"
)

// 매칭 순서가 결과를 결정한다 (first match wins)
var interestOrder = [...]Interest{
	InterestSports,
	InterestMusic,
	InterestArt,
	InterestReading,
	InterestTravel,
}

// Interests returns the keywords in matching order.
func Interests() []Interest {
	out := make([]Interest, len(interestOrder))
	copy(out, interestOrder[:])
	return out
}

// MatchInterest returns the first keyword, in fixed order, contained in text.
// Matching is a case-insensitive substring test, so "smart" matches art.
func MatchInterest(text string) (Interest, bool) {
	t := strings.ToLower(text)
	for _, in := range interestOrder {
		if strings.Contains(t, string(in)) {
			return in, true
		}
	}
	return "", false
}

// BirthdateLayout is the only accepted birthdate format (YYYY-MM-DD).
const BirthdateLayout = "2006-01-02"

// ParseBirthdate parses a YYYY-MM-DD date.
func ParseBirthdate(s string) (time.Time, error) {
	return time.Parse(BirthdateLayout, s)
}

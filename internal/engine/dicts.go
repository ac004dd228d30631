package engine

import (
	"time"

	"hanzi-namer/internal/profile"
)

// 성씨 (fallback surname pool)
var surnames = []string{"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴"}

var (
	maleGivenNames   = []string{"伟", "强", "勇", "杰", "涛", "明", "超", "浩", "宇", "鑫"}
	femaleGivenNames = []string{"丽", "敏", "静", "秀", "娟", "艳", "芳", "玲", "娜", "婷"}
)

var interestCharacters = map[profile.Interest][]string{
	profile.InterestSports:  {"健", "翔", "跃", "飞"},
	profile.InterestMusic:   {"韵", "歌", "乐", "音"},
	profile.InterestArt:     {"雅", "艺", "绘", "墨"},
	profile.InterestReading: {"书", "文", "博", "智"},
	profile.InterestTravel:  {"远", "航", "游", "景"},
}

var seasonalCharacters = map[time.Month][]string{
	time.January:   {"冬", "寒", "雪"},
	time.February:  {"春", "晓", "萌"},
	time.March:     {"春", "雨", "风"},
	time.April:     {"春", "花", "燕"},
	time.May:       {"夏", "阳", "荷"},
	time.June:      {"夏", "雨", "晴"},
	time.July:      {"夏", "炎", "蝉"},
	time.August:    {"秋", "叶", "枫"},
	time.September: {"秋", "月", "桂"},
	time.October:   {"秋", "霜", "菊"},
	time.November:  {"冬", "梅", "寒"},
	time.December:  {"冬", "雪", "冰"},
}

// 영-중 음차 사전. x maps to two characters; only the first survives in a surname.
var latinToChinese = map[rune]string{
	'a': "安", 'b': "本", 'c': "凯", 'd': "德", 'e': "伊",
	'f': "弗", 'g': "格", 'h': "赫", 'i': "艾", 'j': "杰",
	'k': "克", 'l': "勒", 'm': "姆", 'n': "恩", 'o': "欧",
	'p': "佩", 'q': "丘", 'r': "尔", 's': "斯", 't': "特",
	'u': "尤", 'v': "维", 'w': "威", 'x': "克斯", 'y': "伊",
	'z': "兹",
}

// The tables above are never written after init. Accessors hand out copies.

// Surnames returns the fallback surname pool.
func Surnames() []string { return clone(surnames) }

// MaleGivenNames returns the given-name pool for "male".
func MaleGivenNames() []string { return clone(maleGivenNames) }

// FemaleGivenNames returns the given-name pool for every other gender value.
func FemaleGivenNames() []string { return clone(femaleGivenNames) }

// InterestCharacters returns the candidate characters for one keyword.
func InterestCharacters(in profile.Interest) []string {
	return clone(interestCharacters[in])
}

// SeasonalCharacters returns the candidate characters for a birth month.
func SeasonalCharacters(m time.Month) []string {
	return clone(seasonalCharacters[m])
}

// LatinToChinese returns the transliteration of a single letter, or "".
func LatinToChinese(r rune) string {
	return latinToChinese[r]
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

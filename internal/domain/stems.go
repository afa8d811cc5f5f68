package domain

// StemEntry holds the per-language name fragments of one Celestial Stem.
// Readings follow the sexagenary table on the English Wikipedia page
// (https://en.wikipedia.org/wiki/Sexagenary_cycle).
type StemEntry struct {
	Han        string // stem character, shared across languages
	Pinyin     string // tone-marked Mandarin reading
	Korean     string // romanized Korean reading
	Hangul     string
	OnReading  string // Japanese on'yomi
	KunReading string // Japanese kun'yomi (element + e/to)
	Vietnamese string
}

// Elements of the Wu Xing in stem order; each element spans two consecutive
// stems, the first Yang and the second Yin.
var elements = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

// Element returns the English element name for a stem index.
func Element(stemIndex int) string {
	return elements[stemIndex/2]
}

// Polarity returns "Yang" for even stem indices and "Yin" for odd ones.
func Polarity(stemIndex int) string {
	if stemIndex%2 == 0 {
		return "Yang"
	}
	return "Yin"
}

// stems are the 10 Celestial Stems in cycle order.
var stems = [StemCount]StemEntry{
	{Han: "甲", Pinyin: "jiǎ", Korean: "gap", Hangul: "갑", OnReading: "kō", KunReading: "kinoe", Vietnamese: "Giáp"},
	{Han: "乙", Pinyin: "yǐ", Korean: "eul", Hangul: "을", OnReading: "itsu", KunReading: "kinoto", Vietnamese: "Ất"},
	{Han: "丙", Pinyin: "bǐng", Korean: "byeong", Hangul: "병", OnReading: "hei", KunReading: "hinoe", Vietnamese: "Bính"},
	{Han: "丁", Pinyin: "dīng", Korean: "jeong", Hangul: "정", OnReading: "tei", KunReading: "hinoto", Vietnamese: "Đinh"},
	{Han: "戊", Pinyin: "wù", Korean: "mu", Hangul: "무", OnReading: "bo", KunReading: "tsuchinoe", Vietnamese: "Mậu"},
	{Han: "己", Pinyin: "jǐ", Korean: "gi", Hangul: "기", OnReading: "ki", KunReading: "tsuchinoto", Vietnamese: "Kỷ"},
	{Han: "庚", Pinyin: "gēng", Korean: "gyeong", Hangul: "경", OnReading: "kō", KunReading: "kanoe", Vietnamese: "Canh"},
	{Han: "辛", Pinyin: "xīn", Korean: "shin", Hangul: "신", OnReading: "shin", KunReading: "kanoto", Vietnamese: "Tân"},
	{Han: "壬", Pinyin: "rén", Korean: "im", Hangul: "임", OnReading: "jin", KunReading: "mizunoe", Vietnamese: "Nhâm"},
	{Han: "癸", Pinyin: "guǐ", Korean: "gye", Hangul: "계", OnReading: "ki", KunReading: "mizunoto", Vietnamese: "Quý"},
}

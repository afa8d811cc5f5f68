package domain

// BranchEntry holds the per-language name fragments of one Earthly Branch.
type BranchEntry struct {
	Han        string // branch character, shared across languages
	Pinyin     string
	Korean     string
	Hangul     string
	OnReading  string // Japanese on'yomi
	KunReading string // Japanese kun'yomi (the zodiac animal reading)
	Vietnamese string
	Animal     string // English zodiac animal
}

// branches are the 12 Earthly Branches in cycle order.
var branches = [BranchCount]BranchEntry{
	{Han: "子", Pinyin: "zǐ", Korean: "ja", Hangul: "자", OnReading: "shi", KunReading: "ne", Vietnamese: "Tý", Animal: "Rat"},
	{Han: "丑", Pinyin: "chǒu", Korean: "chuk", Hangul: "축", OnReading: "chū", KunReading: "ushi", Vietnamese: "Sửu", Animal: "Ox"},
	{Han: "寅", Pinyin: "yín", Korean: "in", Hangul: "인", OnReading: "in", KunReading: "tora", Vietnamese: "Dần", Animal: "Tiger"},
	{Han: "卯", Pinyin: "mǎo", Korean: "myo", Hangul: "묘", OnReading: "bō", KunReading: "u", Vietnamese: "Mão", Animal: "Rabbit"},
	{Han: "辰", Pinyin: "chén", Korean: "jin", Hangul: "진", OnReading: "shin", KunReading: "tatsu", Vietnamese: "Thìn", Animal: "Dragon"},
	{Han: "巳", Pinyin: "sì", Korean: "sa", Hangul: "사", OnReading: "shi", KunReading: "mi", Vietnamese: "Tỵ", Animal: "Snake"},
	{Han: "午", Pinyin: "wǔ", Korean: "o", Hangul: "오", OnReading: "go", KunReading: "uma", Vietnamese: "Ngọ", Animal: "Horse"},
	{Han: "未", Pinyin: "wèi", Korean: "mi", Hangul: "미", OnReading: "bi", KunReading: "hitsuji", Vietnamese: "Mùi", Animal: "Goat"},
	{Han: "申", Pinyin: "shēn", Korean: "shin", Hangul: "신", OnReading: "shin", KunReading: "saru", Vietnamese: "Thân", Animal: "Monkey"},
	{Han: "酉", Pinyin: "yǒu", Korean: "yu", Hangul: "유", OnReading: "yū", KunReading: "tori", Vietnamese: "Dậu", Animal: "Rooster"},
	{Han: "戌", Pinyin: "xū", Korean: "sul", Hangul: "술", OnReading: "jutsu", KunReading: "inu", Vietnamese: "Tuất", Animal: "Dog"},
	{Han: "亥", Pinyin: "hài", Korean: "hae", Hangul: "해", OnReading: "gai", KunReading: "i", Vietnamese: "Hợi", Animal: "Pig"},
}

package phonetic

import "sync"

// SyllableBoundary is spelled identically in every notation
const SyllableBoundary = "."

// englishPhonemes is the English catalog. Stops, nasals, plain fricatives
// and plain approximants share one spelling across all three notations.
var englishPhonemes = []Phoneme{
	// stops
	{"p", "p", "p", Stop},
	{"b", "b", "b", Stop},
	{"t", "t", "t", Stop},
	{"d", "d", "d", Stop},
	{"k", "k", "k", Stop},
	{"g", "g", "g", Stop},
	// nasals
	{"m", "m", "m", Nasal},
	{"n", "n", "n", Nasal},
	{"ng", "N", "ŋ", Nasal},
	// fricatives
	{"f", "f", "f", Fricative},
	{"v", "v", "v", Fricative},
	{"s", "s", "s", Fricative},
	{"z", "z", "z", Fricative},
	{"h", "h", "h", Fricative},
	{"th", "T", "θ", Fricative},
	{"dh", "D", "ð", Fricative},
	{"sh", "S", "ʃ", Fricative},
	{"zh", "Z", "ʒ", Fricative},
	// affricates, written as two IPA glyphs rather than the ligatures
	{"ch", "tS", "tʃ", Affricate},
	{"jh", "dZ", "dʒ", Affricate},
	// approximants
	{"w", "w", "w", Approximant},
	{"l", "l", "l", Approximant},
	{"r", `r\`, "ɹ", Approximant},
	{"y", "j", "j", Approximant},
	// vowels
	{"a", "{", "æ", Vowel},
	{"aa", "A", "ɑ:", Vowel},
	{"i", "I", "ɪ", Vowel},
	{"ii", "i:", "i:", Vowel},
	{"uh", "V", "ʌ", Vowel},
	{"u", "U", "ʊ", Vowel},
	{"uu", "u:", "u:", Vowel},
	{"e", "E", "ɛ", Vowel},
	{"ax", "@", "ə", Vowel},
	{"aax", "3:", "ɜ:", Vowel},
	{"o", "Q", "ɒ", Vowel},
	{"oo", "O", "ɔ:", Vowel},
	// diphthongs
	{"ai", "aI", "aɪ", Diphthong},
	{"oi", "OI", "ɔɪ", Diphthong},
	{"au", "aU", "aʊ", Diphthong},
	{"ou", "@U", "əʊ", Diphthong},
	{"iax", "I@", "ɪə", Diphthong},
	{"eax", "E@", "ɛə", Diphthong},
	{"uax", "U@", "ʊə", Diphthong},
	// syllable break
	{SyllableBoundary, SyllableBoundary, SyllableBoundary, Boundary},
	// stress: primary, secondary, unstressed (no IPA glyph)
	{"1", `"`, "ˈ", Stress},
	{"2", "%", "ˌ", Stress},
	{"0", "-", "", Stress},
}

// English returns the shared English phoneme table. It is built on first
// use and never modified afterwards.
var English = sync.OnceValue(func() *Table {
	t, err := NewTable(englishPhonemes)
	if err != nil {
		panic("phonetic: invalid English catalog: " + err.Error())
	}
	return t
})

package phonetic

// Class groups phonemes by manner of articulation. The boundary and stress
// classes mark the entries the converter treats specially.
type Class int

const (
	Stop Class = iota
	Nasal
	Fricative
	Affricate
	Approximant
	Vowel
	Diphthong
	Boundary
	Stress
)

func (c Class) String() string {
	switch c {
	case Stop:
		return "stop"
	case Nasal:
		return "nasal"
	case Fricative:
		return "fricative"
	case Affricate:
		return "affricate"
	case Approximant:
		return "approximant"
	case Vowel:
		return "vowel"
	case Diphthong:
		return "diphthong"
	case Boundary:
		return "boundary"
	case Stress:
		return "stress"
	default:
		return "unknown"
	}
}

// Phoneme is one catalog entry with its spelling in every notation
type Phoneme struct {
	ARPABET string
	XSAMPA  string
	IPA     string
	Class   Class
}

// Spelling returns the phoneme as written in notation n
func (p Phoneme) Spelling(n Notation) string {
	switch n {
	case ARPABET:
		return p.ARPABET
	case XSAMPA:
		return p.XSAMPA
	case IPA:
		return p.IPA
	default:
		return ""
	}
}

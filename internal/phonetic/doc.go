// Package phonetic holds the closed catalog of English phonemes and their
// spellings in ARPABET, X-SAMPA and IPA. A Table answers exact-match
// lookups by ARPABET or X-SAMPA symbol; IPA is an output-only notation.
package phonetic

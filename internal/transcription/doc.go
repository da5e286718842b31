// Package transcription converts whole phonemic transcriptions between
// ARPABET, X-SAMPA and IPA.
//
// ARPABET and X-SAMPA write stress after the vowel it applies to, while IPA
// writes it at the start of the syllable. When converting to IPA, stress
// markers are therefore moved back to just after the most recent syllable
// boundary (or to the start of the output if no boundary has been emitted).
package transcription

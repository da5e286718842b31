// Package lexicon persists converted pronunciations in a SQLite database.
// Each record keeps a word together with its ARPABET, X-SAMPA and IPA
// spellings so later lookups need no conversion.
package lexicon

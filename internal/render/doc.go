// Package render writes conversion results, lexicon records and the phoneme
// catalog in the formats offered by the command line: plain text, CSV, JSON,
// YAML and a styled terminal table.
package render

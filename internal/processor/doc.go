// Package processor contains the application logic behind the phonconv
// command. It reads transcriptions from the command line or a batch file,
// converts them, renders the results and optionally records every
// spelling in the lexicon database.
package processor

// Package feed loads the supplier stock sheet: a ZIP archive holding one
// spreadsheet, downloaded from a fixed location. Rows below a fixed
// header offset carry the SKU code, a free-text quantity token, and a
// locale-formatted price; they are surfaced as Records without any
// normalization.
//
// The package also archives the raw downloads to object storage when
// configured, purely for audit — nothing is read back between runs.
package feed

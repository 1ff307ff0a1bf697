// Package codec reads and writes GBLN documents as byte streams and
// files, compressing compact output with XZ when the configuration asks
// for it and detecting compressed input by its magic bytes.
package codec

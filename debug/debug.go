// Package debug provides environment gated debug logging.
//
// Each category is enabled by setting its environment variable to a true
// value (see strconv.ParseBool):
//
//	GBLN_DEBUG_LEX     tokens as the parser consumes them
//	GBLN_DEBUG_PARSE   parse results and failures
//	GBLN_DEBUG_ENCODE  serializer and file shape decisions
//	GBLN_DEBUG_CODEC   file codec reads and writes
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Parse  bool
	Encode bool
	Codec  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("GBLN_DEBUG_LEX")
	d.Parse = boolEnv("GBLN_DEBUG_PARSE")
	d.Encode = boolEnv("GBLN_DEBUG_ENCODE")
	d.Codec = boolEnv("GBLN_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Codec() bool {
	return d.Codec
}

package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
	Tables bool
	Patch  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("CRAM_DEBUG_ENCODE")
	d.Decode = boolEnv("CRAM_DEBUG_DECODE")
	d.Tables = boolEnv("CRAM_DEBUG_TABLES")
	d.Patch = boolEnv("CRAM_DEBUG_PATCH")
	d.Eval = boolEnv("CRAM_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Tables() bool {
	return d.Tables
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

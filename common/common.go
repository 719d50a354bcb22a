package common

import (
	"strconv"
	"strings"
	"unsafe"
)

type EndFunc func()

const (
	KB = "1kb"
	MB = "1mb"
)

func ToByte(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ResolveUnionIntOrStringValue accepts either a plain byte count ("1048576") or a
// size with a kb/mb/gb suffix ("1mb"). Unparseable values resolve to 0.
func ResolveUnionIntOrStringValue(value string) int {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) == 0 {
		return 0
	}
	multiplier := 1
	for suffix, m := range map[string]int{"kb": 1 << 10, "mb": 1 << 20, "gb": 1 << 30} {
		if strings.HasSuffix(value, suffix) {
			multiplier = m
			value = strings.TrimSpace(strings.TrimSuffix(value, suffix))
			break
		}
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return number * multiplier
}

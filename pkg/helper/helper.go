package helper

import (
	"strings"
)

// DriverCode builds the three letter broadcast code of a driver: first
// letter of the name plus the first two letters of the second word.
// A single word name uses its first three letters.
func DriverCode(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])
	code := string(first[0])
	if len(words) > 1 {
		code += prefix(words[1], 2)
	} else {
		code += prefix(string(first[1:]), 2)
	}
	return strings.ToUpper(code)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

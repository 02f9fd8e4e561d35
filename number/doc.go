// Package number converts between numbers and their text form.
//
// Integer grammar: optional underscores anywhere after the first byte that
// is not an underscore, an optional "0x"/"0X" (hex) or "0d"/"0D"
// (decimal) prefix, then digits. A lone "0" may not be followed by more
// digits, so "007" and "0644" are rejected while "0x0ff" is not. ParseI64
// also accepts a leading '+' or '-'.
//
// Float grammar: optional sign, digits with no unnecessary leading zero,
// an optional '.' or ',' separator followed by at least one digit, and an
// optional exponent. "inf", "infinity" and "nan" are accepted in any case.
// Parsing is correctly rounded.
//
// The Render functions write into a caller buffer and return the number
// of bytes written. When the buffer is too short they write nothing and
// return 0.
package number

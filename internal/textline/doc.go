// Package textline turns raw input lines into normalized word sequences.
//
// A normalized line holds words separated by exactly one space and ends with
// a single '\n'. A line without any word normalizes to "\n", the blank-line
// marker understood by the justify package.
//
// Width is always measured in visible characters: UTF-8 continuation bytes
// (10xxxxxx) occupy no column, so an accented letter counts once even though
// it takes two bytes.
package textline

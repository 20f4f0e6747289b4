// Package utils provides small type conversion helpers.
//
// Catalog documents are loosely typed JSON maintained by hand, so fields a
// strict decoder would reject (numbers as strings, booleans as 0/1) are
// normalized through these helpers instead of failing the whole document.
package utils

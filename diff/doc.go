// Package diff compares two GBLN documents value by value, telling
// content changes apart from changes of type, width or string bound.
package diff

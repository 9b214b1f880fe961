// Package arrays provides an insertion ordered associative [Map] and helpers for slices and nested maps.
package arrays

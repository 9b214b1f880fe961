// Package formatter renders byte sizes and time intervals for humans.
package formatter

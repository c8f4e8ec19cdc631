// Package ui provides semantic text formatting for sealbox CLI output.
//
// Formatters carry both a color and a plain-text decoration, so output
// stays readable when colors are disabled (NO_COLOR, dumb terminals,
// redirected output).
package ui

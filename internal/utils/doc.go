// Package utils provides terminal helpers shared by sealbox commands,
// primarily hidden password prompts via golang.org/x/term.
package utils

// Package commands defines the cobra command tree for the roll CLI.
//
// The root command takes a single dice notation argument such as "2d6+3",
// rolls it, and prints the individual dice and the total. Invalid notation is
// reported as "Error: <message>" on stdout without rolling anything.
package commands

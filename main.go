// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma is a workbench for classical ciphers: an Enigma style
// rotor machine, the Caesar shift cipher, and brute force attacks on both.
package main

import "github.com/bgallie/enigma/cmd"

func main() {
	cmd.Execute()
}

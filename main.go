// Package main provides the entry point for the Image Annotator application.
package main

import "image-interact/cmd"

func main() {
	cmd.Execute()
}

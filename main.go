package main

import "github.com/matt-wadsworth/fm-attribute-customizer/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mj1618/a11y-reporter/cmd"

func main() {
	cmd.Execute()
}

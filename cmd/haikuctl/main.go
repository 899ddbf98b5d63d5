package main

import "haikubot/internal/cli"

func main() {
	cli.Execute()
}

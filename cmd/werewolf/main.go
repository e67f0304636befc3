package main

import "github.com/mcoot/werewolfgame-go/internal/cli"

func main() {
	cli.Execute()
}

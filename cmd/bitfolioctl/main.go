package main

import "github.com/bitfolio/bitfolio/cmd/bitfolioctl/cmd"

func main() {
	cmd.Execute()
}

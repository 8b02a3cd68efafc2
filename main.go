package main

import "github.com/safecli/safeaddrs/cmd"

func main() {
	cmd.Execute()
}

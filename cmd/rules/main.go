package main

import (
	"os"
)

func main() {
	sh := newShell(os.Stdout)
	sh.loop(os.Stdin)
}

package main

import (
	"github.com/Rishivarshney100/kuchbhi/internal/cli"
)

func main() {
	cli.Execute()
}

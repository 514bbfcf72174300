// mkicon writes the app icon PNG embedded by cmd/luwidget.
// Usage: go run ./cmd/mkicon [-size N] <output.png>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/luwidget/internal/icon"
	"github.com/Mavwarf/luwidget/internal/paths"
)

func main() {
	size := 256
	var out string
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-size", "--size":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "mkicon: %s requires a value\n", args[i])
				os.Exit(1)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 16 || n > 1024 {
				fmt.Fprintf(os.Stderr, "mkicon: size must be between 16 and 1024\n")
				os.Exit(1)
			}
			size = n
			i++
		default:
			out = args[i]
		}
	}
	if out == "" {
		fmt.Fprintf(os.Stderr, "Usage: mkicon [-size N] <output.png>\n")
		os.Exit(1)
	}

	data, err := icon.PNG(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkicon: %v\n", err)
		os.Exit(1)
	}
	if err := paths.AtomicWrite(out, data); err != nil {
		fmt.Fprintf(os.Stderr, "mkicon: %v\n", err)
		os.Exit(1)
	}
}

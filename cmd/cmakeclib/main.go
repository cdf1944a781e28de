package main

import "github.com/goplus/cmakeclib/cmd/cmakeclib/internal"

func main() {
	internal.Execute()
}

package main

import (
	bookshelf "github.com/kerbaras/bookshelf/cmd/bookshelf"
)

func main() {
	bookshelf.Execute()
}

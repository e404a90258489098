package main

import "kombat/cmd/kombat/root"

func main() {
	root.Execute()
}

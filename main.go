package main

import "curation-backend/cmd"

func main() {
	cmd.Run()
}

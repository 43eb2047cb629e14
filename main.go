package main

import "dossier/internal/cli"

func main() {
	cli.Execute()
}

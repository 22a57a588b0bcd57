package main

import (
	"github.com/SK1028846/fantasy-football-pipeline/internal/cli"
)

func main() {
	cli.Execute()
}

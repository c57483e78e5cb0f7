package main

import (
	"MetricsAnalyzer/pkg/commands"
)

func main() {
	commands.Execute()
}

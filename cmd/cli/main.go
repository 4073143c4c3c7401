package main

import (
	"github.com/mchmarny/gradestat/pkg/cli"
)

func main() {
	cli.Execute()
}

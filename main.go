// Package main is the entry point for the cbstream application.
package main

import (
	"github.com/cbstream/cbstream/cmd"
	"github.com/cbstream/cbstream/config"
	"github.com/cbstream/cbstream/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

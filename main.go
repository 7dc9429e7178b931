package main

import (
	"github.com/reelroll-cli/reelroll/cmd"
	"github.com/reelroll-cli/reelroll/config"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

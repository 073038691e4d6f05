package main

import (
	"github.com/msymeonides/TCRBuilder/internal/appshell"
	"github.com/msymeonides/TCRBuilder/internal/builderapp"
)

func main() {
	appshell.Main(builderapp.RunContext)
}

package main

import (
	"github.com/msymeonides/TCRBuilder/internal/appshell"
	"github.com/msymeonides/TCRBuilder/internal/clusterapp"
)

func main() {
	appshell.Main(clusterapp.RunContext)
}

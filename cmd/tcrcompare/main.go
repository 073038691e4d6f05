package main

import (
	"github.com/msymeonides/TCRBuilder/internal/appshell"
	"github.com/msymeonides/TCRBuilder/internal/compareapp"
)

func main() {
	appshell.Main(compareapp.RunContext)
}

package main

import (
	"leopardweb-catalog/cmd/leopardweb/commands"
	"leopardweb-catalog/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}

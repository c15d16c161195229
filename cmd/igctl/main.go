package main

import "github.com/vfg2006/instagram-insights-api/cmd/igctl/cmd"

func main() {
	cmd.Execute()
}

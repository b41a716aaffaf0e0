package main

import "github.com/atlasdesk/triage-assistant/internal/cli"

func main() {
	cli.Execute()
}

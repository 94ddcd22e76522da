package main

import "github.com/KaramelBytes/nlpsummarize/cmd"

func main() {
	cmd.Execute()
}

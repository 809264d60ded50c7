package main

import "github.com/sumwatshade/macauwx/cmd"

func main() {
	cmd.Execute()
}

package main

import "delivery-console/cmd"

func main() {
	cmd.Execute()
}

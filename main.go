package main

import "staff-admin/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/1ns0mn1a7/seller-apis/cmd"

func main() {
	cmd.Execute()
}

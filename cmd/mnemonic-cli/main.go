package main

import "github.com/gefd/bip39/cmd/mnemonic-cli/cmd"

func main() {
	cmd.Execute()
}

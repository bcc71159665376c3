package main

import (
	"github.com/sujinee01/Image-Verification-Automation-System/cmd/imgverify/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/lehigh-university-libraries/pid/cmd"
)

func main() {
	cmd.Execute()
}

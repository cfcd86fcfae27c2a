package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	_ "github.com/viant/scy/kms/blowfish"

	"github.com/viant/shortlink/cli"
)

func main() {
	err := cli.Run(os.Args[1:])
	if err == nil {
		return
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Println(flagsErr.Message)
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}

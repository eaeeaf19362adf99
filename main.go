package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fractional/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fractional"
	app.Usage = "Reduce, compare and compute with rational numbers."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration file",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "Construct 1/3 and 2/6, reduce the latter and print both",
			Action: demoCmd,
		},
		{
			Name:   "reduce",
			Usage:  "Reduce a rational number to lowest terms",
			Action: reduceCmd,
			Flags:  leftOperandFlags(),
		},
		{
			Name:   "add",
			Usage:  "Print x + y",
			Action: addCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "subtract",
			Usage:  "Print x - y",
			Action: subtractCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "multiply",
			Usage:  "Print x * y",
			Action: multiplyCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "divide",
			Usage:  "Print x / y",
			Action: divideCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "compare",
			Usage:  "Print whether x equals y and their ordering",
			Action: compareCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "encode",
			Usage:  "Encode a rational number as msgpack HEX and JSON",
			Action: encodeCmd,
			Flags:  leftOperandFlags(),
		},
		{
			Name:   "decode",
			Usage:  "Decode a msgpack HEX encoded rational number",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "raw",
					Usage: "the msgpack `HEX` of the rational number",
				},
			},
		},
	}
	return app
}

func leftOperandFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:  "xn",
			Usage: "the numerator of x",
		},
		&cli.Int64Flag{
			Name:  "xd",
			Value: 1,
			Usage: "the denominator of x",
		},
	}
}

func operandFlags() []cli.Flag {
	return append(leftOperandFlags(),
		&cli.Int64Flag{
			Name:  "yn",
			Usage: "the numerator of y",
		},
		&cli.Int64Flag{
			Name:  "yd",
			Usage: "the denominator of y, y is a bare integer when omitted",
		},
	)
}

// Command poculum is a demonstration front end for the codec: it converts
// JSON documents to canonical poculum hex and back, and pretty-prints the
// structure of an encoding.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	poculum "github.com/shinyes/poculum-go"
)

func main() {
	app := cli.NewApp()
	app.Name = "poculum"
	app.Usage = "encode, decode, and inspect poculum values"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "read a JSON document and print the canonical poculum encoding as hex",
			ArgsUsage: "[file]",
			Action:    encodeCommand,
		},
		{
			Name:      "decode",
			Usage:     "read poculum hex and print the value as JSON",
			ArgsUsage: "[hex]",
			Action:    decodeCommand,
		},
		{
			Name:      "inspect",
			Usage:     "read poculum hex and print the value tree with wire tags",
			ArgsUsage: "[hex]",
			Action:    inspectCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// readInput returns the first argument, or stdin when no argument is given.
func readInput(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func encodeCommand(c *cli.Context) error {
	var src io.Reader = os.Stdin
	if c.NArg() > 0 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	v, err := parseJSON(src)
	if err != nil {
		return err
	}
	logrus.WithField("value", v.String()).Debug("parsed document")
	s, err := poculum.EncodeHex(v)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func decodeCommand(c *cli.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	v, err := poculum.DecodeHex(in)
	if err != nil {
		return err
	}
	out, err := renderJSON(v)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func inspectCommand(c *cli.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}
	v, err := poculum.DecodeHex(in)
	if err != nil {
		return err
	}
	var b strings.Builder
	dumpValue(&b, v, 0)
	fmt.Print(b.String())
	return nil
}

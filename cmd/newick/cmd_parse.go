package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/newick/format"
	"github.com/dhamidi/newick/tree"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var decodeNHX bool
	var verbosity int

	cmd := &cobra.Command{
		Use:           "parse [file]",
		Short:         "Parse a Newick tree and dump the result",
		Long:          "Parse a Newick tree from a file or stdin and dump it as indented text or JSON.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			log := commonlog.GetLogger("newick.parse")

			data, err := readInput(args)
			if err != nil {
				return err
			}

			text := strings.TrimSpace(string(data))
			var root *tree.Node
			if decodeNHX {
				root, err = tree.ParseNHX(text)
			} else {
				root, err = tree.Parse(text)
			}
			if err != nil {
				return fmt.Errorf("parse tree: %w", err)
			}
			log.Infof("parsed %d nodes", root.Count())

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text or json)")
	cmd.Flags().BoolVar(&decodeNHX, "nhx", false, "decode NHX annotations in node comments")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Command gosub-html parses HTML documents and dumps the resulting tree
// or the parse-error log.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	gosub "github.com/gosub-io/gosub-engine-sub000"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/testutil"
)

var version = "dev"

// fileConfig is the optional YAML config (--config).
type fileConfig struct {
	Scripting    *bool  `yaml:"scripting"`
	IframeSrcdoc bool   `yaml:"iframe_srcdoc"`
	Encoding     string `yaml:"encoding"`
	DocumentURL  string `yaml:"document_url"`
	Verbose      bool   `yaml:"verbose"`
}

type cliFlags struct {
	configPath  string
	fragment    string
	encoding    string
	documentURL string
	showErrors  bool
	noScripting bool
	srcdoc      bool
	verbose     bool
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	flags := &cliFlags{}

	root := &cobra.Command{
		Use:     "gosub-html [file]",
		Short:   "Parse an HTML document and dump the tree",
		Long:    "Parse an HTML file (or stdin with '-') and print the constructed tree in html5lib pipe format, optionally listing parse errors.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), log, flags, args)
		},
	}

	root.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file with parse options")
	root.Flags().StringVarP(&flags.fragment, "fragment", "f", "", "parse as a fragment with this context tag")
	root.Flags().StringVar(&flags.encoding, "encoding", "", "transport-declared encoding label")
	root.Flags().StringVar(&flags.documentURL, "url", "", "document URL for stylesheet resolution")
	root.Flags().BoolVarP(&flags.showErrors, "errors", "e", false, "list parse errors after the tree")
	root.Flags().BoolVar(&flags.noScripting, "no-scripting", false, "parse with the scripting flag off")
	root.Flags().BoolVar(&flags.srcdoc, "srcdoc", false, "treat input as an iframe srcdoc document")
	root.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("parse failed")
	}
}

func run(out io.Writer, log *logrus.Logger, flags *cliFlags, args []string) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	applyConfig(flags, cfg)

	if flags.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	input, source, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.WithFields(logrus.Fields{
		"source": source,
		"bytes":  len(input),
	}).Debug("input loaded")

	opts := []gosub.Option{gosub.WithCollectErrors()}
	if flags.noScripting {
		opts = append(opts, gosub.WithScripting(false))
	}
	if flags.srcdoc {
		opts = append(opts, gosub.WithIframeSrcdoc())
	}
	if flags.encoding != "" {
		opts = append(opts, gosub.WithEncoding(flags.encoding))
	}
	if flags.documentURL != "" {
		opts = append(opts, gosub.WithDocumentURL(flags.documentURL))
	}
	if flags.verbose {
		opts = append(opts, gosub.WithTraceLogger(log))
	}

	var doc *dom.Document
	var parseErr error
	if flags.fragment != "" {
		var nodes []dom.NodeID
		doc, nodes, parseErr = gosub.ParseFragmentString(string(input), flags.fragment, opts...)
		if doc != nil {
			printFragment(out, doc, nodes)
		}
	} else {
		doc, parseErr = gosub.ParseBytes(input, opts...)
		if doc != nil {
			fmt.Fprintln(out, testutil.DumpTree(doc))
		}
	}

	if parseErrs, ok := parseErr.(errors.ParseErrors); ok {
		if flags.showErrors {
			fmt.Fprintf(out, "\n%d parse errors:\n", len(parseErrs))
			for _, e := range parseErrs {
				fmt.Fprintf(out, "  %s\n", e.Error())
			}
		} else {
			log.WithField("count", len(parseErrs)).Debug("parse errors recovered")
		}
		return nil
	}
	return parseErr
}

func printFragment(out io.Writer, doc *dom.Document, nodes []dom.NodeID) {
	for _, id := range nodes {
		n := doc.NodeByID(id)
		if n == nil {
			continue
		}
		switch n.Type {
		case dom.TextNodeType:
			fmt.Fprintf(out, "| %q\n", n.Data)
		default:
			fmt.Fprintf(out, "| <%s>\n", n.TagName)
			sub := testutil.DumpSubtree(doc, id)
			if sub != "" {
				fmt.Fprintln(out, sub)
			}
		}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func applyConfig(flags *cliFlags, cfg *fileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Scripting != nil && !*cfg.Scripting {
		flags.noScripting = true
	}
	if cfg.IframeSrcdoc {
		flags.srcdoc = true
	}
	if cfg.Encoding != "" && flags.encoding == "" {
		flags.encoding = cfg.Encoding
	}
	if cfg.DocumentURL != "" && flags.documentURL == "" {
		flags.documentURL = cfg.DocumentURL
	}
	if cfg.Verbose {
		flags.verbose = true
	}
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

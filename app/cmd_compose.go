package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/ApplePieCodes/adtp-go/emit"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var composeOpts struct {
	kind     string
	method   string
	status   string
	uri      string
	content  string
	headers  []string
	fromForm string
	stampID  bool
	output   string
}

func NewCmdCompose(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build one ADTP message and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doCompose(out, afero.NewOsFs(), config)
		},
	}

	cmd.Flags().StringVar(&composeOpts.kind, "kind", emit.KindRequest, "Message kind (request or response)")
	cmd.Flags().StringVar(&composeOpts.method, "method", "", "Operation verb (requests only)")
	cmd.Flags().StringVar(&composeOpts.status, "status", "", "Outcome code (responses only)")
	cmd.Flags().StringVar(&composeOpts.uri, "uri", "", "Target resource identifier (requests only)")
	cmd.Flags().StringVar(&composeOpts.content, "content", "", "Message content")
	cmd.Flags().StringArrayVar(&composeOpts.headers, "header", nil, "Header entry as key=value (repeatable)")
	cmd.Flags().StringVar(&composeOpts.fromForm, "from-form", "", `Urlencoded form directive, e.g. "method=read&uri=/x"`)
	cmd.Flags().BoolVar(&composeOpts.stampID, "stamp-id", false, "Add an X-ADTP-Message-Id header")
	cmd.Flags().StringVarP(&composeOpts.output, "output", "o", "", "Destination file (default: stdout)")

	return cmd
}

func doCompose(out io.Writer, fs afero.Fs, config *Config) error {
	var (
		d   emit.Directive
		err error
	)
	if composeOpts.fromForm != "" {
		d, err = emit.FromForm(composeOpts.fromForm)
		if err != nil {
			return err
		}
	} else {
		d = emit.Directive{
			Kind:    composeOpts.kind,
			Method:  composeOpts.method,
			Status:  composeOpts.status,
			URI:     composeOpts.uri,
			Content: composeOpts.content,
		}
		for _, entry := range composeOpts.headers {
			parts := strings.SplitN(entry, "=", 2)
			if len(parts) != 2 {
				return errors.Errorf("malformed header flag %q, want key=value", entry)
			}
			if d.Headers == nil {
				d.Headers = map[string]string{}
			}
			d.Headers[parts[0]] = parts[1]
		}
	}

	if composeOpts.stampID || config.Emit.StampIDs {
		d.StampID = true
	}
	if d.Version == "" {
		d.Version = config.Emit.DefaultVersion
	}

	blob, err := emit.Assemble(d)
	if err != nil {
		return err
	}

	output := composeOpts.output
	if output == "" {
		output = config.Emit.Output
	}
	if output == "" {
		_, err = fmt.Fprintln(out, blob)
		return err
	}
	return errors.Wrap(afero.WriteFile(fs, output, []byte(blob+"\n"), 0644), "writing message file")
}

package app

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/ApplePieCodes/adtp-go/emit"
	"github.com/ApplePieCodes/adtp-go/version"

	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var metricsFile string

func NewCmdStream(logger logrus.FieldLogger, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Read JSON directives from stdin and emit one message per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.WithField("v", version.VERSION).Info("Starting stream...")
			return doStream(logger, config, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "File receiving the build counters on exit")

	return cmd
}

func doStream(logger logrus.FieldLogger, config *Config, in io.Reader, out io.Writer) error {
	metrics := emit.NewCollector()
	emitter := emit.NewEmitter(logger, metrics, out)

	var g run.Group
	{
		done := make(chan struct{})
		scanner := bufio.NewScanner(in)

		g.Add(func() error {
			for scanner.Scan() {
				select {
				case <-done:
					return nil
				default:
				}
				line := scanner.Bytes()
				if len(bytes.TrimSpace(line)) == 0 {
					continue
				}
				d, err := emit.FromJSON(line)
				if err != nil {
					// Garbage on the input stream is tolerated.
					metrics.BuildFailed()
					logger.WithField("err", err).Warn("Discarding malformed directive")
					continue
				}
				if d.Version == "" {
					d.Version = config.Emit.DefaultVersion
				}
				if config.Emit.StampIDs {
					d.StampID = true
				}
				if err := emitter.Emit(d); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				select {
				case <-done:
					// The reader was closed underneath the scanner to
					// unblock it; not an error.
					return nil
				default:
					return errors.Wrap(err, "reading directives")
				}
			}
			return nil
		}, func(error) {
			close(done)
			if closer, ok := in.(io.Closer); ok {
				closer.Close()
			}
		})
	}
	{
		cancel := make(chan struct{})

		g.Add(func() error {
			err := interrupt(cancel, logger, metrics)
			logger.Warn("Shutting down...")
			return err
		}, func(error) {
			close(cancel)
		})
	}

	err := g.Run()

	file := metricsFile
	if file == "" {
		file = config.Metrics.File
	}
	if file != "" {
		if werr := metrics.WriteFile(afero.NewOsFs(), file); werr != nil {
			logger.WithField("err", werr).Error("Cannot write the metrics file")
		}
	}

	return err
}

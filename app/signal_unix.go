// +build !windows

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ApplePieCodes/adtp-go/emit"

	"github.com/sirupsen/logrus"
)

func interrupt(cancel <-chan struct{}, logger logrus.FieldLogger, metrics *emit.Collector) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	for {
		select {
		case sig := <-c:
			switch sig {
			case syscall.SIGUSR1:
				snapshot, err := metrics.Render()
				if err != nil {
					logger.WithField("err", err).Warn("Cannot render the metrics snapshot")
					continue
				}
				logger.Info(snapshot)
				continue
			default:
				return fmt.Errorf("received signal %s", sig)
			}
		case <-cancel:
			return context.Canceled
		}
	}
}

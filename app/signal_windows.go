// +build windows

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
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-c:
		return fmt.Errorf("received signal %s", sig)
	case <-cancel:
		return context.Canceled
	}
}

//go:build !unix

package commands

import "github.com/sirupsen/logrus"

func logHostBanner(logger *logrus.Logger) {
	logger.Info("Starting entmon")
}

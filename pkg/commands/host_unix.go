//go:build unix

package commands

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// logHostBanner logs the host identity at startup.
func logHostBanner(logger *logrus.Logger) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		logger.WithField("error", err).Debug("uname failed")
		return
	}
	logger.WithFields(logrus.Fields{
		"sysname":  unix.ByteSliceToString(uts.Sysname[:]),
		"nodename": unix.ByteSliceToString(uts.Nodename[:]),
		"release":  unix.ByteSliceToString(uts.Release[:]),
		"machine":  unix.ByteSliceToString(uts.Machine[:]),
	}).Info("Starting entmon")
}

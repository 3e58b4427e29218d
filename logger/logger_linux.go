//go:build linux

package logger

import (
	"log/syslog"
	"os"
	"path"

	"github.com/op/go-logging"
)

const (
	SYSLOG_PRIORITY = syslog.LOG_CRIT | syslog.LOG_DAEMON
)

var syslogEnabled bool

// EnableSyslog additionally routes logs to the local syslog daemon.
func EnableSyslog() error {
	if syslogEnabled {
		return nil
	}

	syslogWriter, err := syslog.New(SYSLOG_PRIORITY, path.Base(os.Args[0]))
	if err != nil {
		return err
	}
	backends = append(backends, &logging.SyslogBackend{Writer: syslogWriter})
	applyBackendChange()
	syslogEnabled = true
	return nil
}

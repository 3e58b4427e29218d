package logger

import (
	"fmt"
	"net"
	"os"
	"path"
	"time"

	"github.com/lestrrat-go/file-rotatelogs"
	"github.com/op/go-logging"
)

const (
	LOG_ROTATION_INTERVAL = 24 * time.Hour      // every day
	LOG_MAX_AGE           = 30 * 24 * time.Hour // every month
	LOG_FORMAT            = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"
	LOG_COLOR_FORMAT      = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"

	DEFAULT_RSYSLOG_PORT = 514
)

var log = logging.MustGetLogger("logger")

var (
	logLevel = logging.INFO
	backends = []logging.Backend{}
)

func applyBackendChange() {
	leveled := make([]logging.Backend, 0, len(backends))
	for _, backend := range backends {
		b := logging.AddModuleLevel(backend)
		b.SetLevel(logLevel, "")
		leveled = append(leveled, b)
	}
	logging.SetBackend(leveled...)
}

func parseLevel(levelString string) logging.Level {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		log.Warning("invalid log level", levelString, "using info")
		return logging.INFO
	}
	return level
}

func InitConsoleLog(levelString string) {
	logLevel = parseLevel(levelString)
	backends = []logging.Backend{
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stdout, "", 0),
			logging.MustStringFormatter(LOG_COLOR_FORMAT),
		),
	}
	applyBackendChange()
}

func InitLog(filePath string, levelString string) {
	logLevel = parseLevel(levelString)

	dir := path.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		} else {
			log.Error(err.Error())
		}
	}

	ioWriter, err := rotatelogs.New(
		filePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(LOG_MAX_AGE),
		rotatelogs.WithRotationTime(LOG_ROTATION_INTERVAL),
	)
	if err != nil {
		log.Error(err.Error())
		os.Exit(-1)
	}

	backends = []logging.Backend{
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stdout, "", 0),
			logging.MustStringFormatter(LOG_COLOR_FORMAT),
		),
		logging.NewBackendFormatter(
			logging.NewLogBackend(ioWriter, "", 0),
			logging.MustStringFormatter(LOG_FORMAT),
		),
	}
	applyBackendChange()
}

// EnableRsyslog在现有日志后端之外增加远程rsyslog转发，
// server可以不带端口，缺省使用514
func EnableRsyslog(server string, tag string) {
	writer := NewRsyslogWriter("udp", getRemoteAddress(server, DEFAULT_RSYSLOG_PORT), tag, "")
	backends = append(backends, logging.NewBackendFormatter(
		logging.NewLogBackend(writer, "", 0),
		logging.MustStringFormatter(LOG_FORMAT),
	))
	applyBackendChange()
}

func getRemoteAddress(server string, defaultPort int) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	if ip := net.ParseIP(server); ip != nil && ip.To4() == nil {
		return fmt.Sprintf("[%s]:%d", server, defaultPort)
	}
	return fmt.Sprintf("%s:%d", server, defaultPort)
}

package logger

import (
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"time"
)

// RSyslogWriter转发日志到远程rsyslog，连接失败时在下次写入重试
type RSyslogWriter struct {
	tag      string
	hostname string
	network  string
	raddr    string
	header   string

	mu   sync.Mutex // guards conn
	conn net.Conn
}

func NewRsyslogWriter(network, raddr string, tag, header string) *RSyslogWriter {
	if tag == "" {
		tag = os.Args[0]
	}
	hostname, _ := os.Hostname()
	return &RSyslogWriter{
		tag:      tag,
		hostname: hostname,
		network:  network,
		raddr:    raddr,
		header:   header,
	}
}

func (w *RSyslogWriter) connect() error {
	if w.conn != nil {
		// ignore err from close, it makes sense to continue anyway
		w.conn.Close()
		w.conn = nil
	}
	conn, err := net.Dial(w.network, w.raddr)
	if err != nil {
		return err
	}
	w.conn = conn
	if w.hostname == "" {
		w.hostname = conn.LocalAddr().String()
	}
	return nil
}

func (w *RSyslogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		err := w.conn.Close()
		w.conn = nil
		return err
	}
	return nil
}

// Write sends a log message to the rsyslog daemon, behaving like an
// io.Writer: the returned length is that of the input.
func (w *RSyslogWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	msg := string(b)
	if w.conn != nil {
		if err := w.writeString(msg); err == nil {
			return len(b), nil
		}
	}
	if err := w.connect(); err != nil {
		return 0, err
	}
	if err := w.writeString(msg); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (w *RSyslogWriter) writeString(msg string) error {
	nl := ""
	if !strings.HasSuffix(msg, "\n") {
		nl = "\n"
	}
	timestamp := time.Now().Format(time.RFC3339)
	_, err := fmt.Fprintf(w.conn, "%s%s %s %s[%d]: %s%s", w.header,
		timestamp, w.hostname, w.tag, os.Getpid(), msg, nl)
	return err
}

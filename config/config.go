package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("config")

type WorkloadConfig struct {
	NodeCount   int           `yaml:"node-count"`
	Rounds      int           `yaml:"rounds"`
	ReportEvery time.Duration `yaml:"report-every"`
}

type Config struct {
	LogFile      string         `yaml:"log-file"`
	LogLevel     string         `yaml:"log-level"`
	RsyslogSrv   string         `yaml:"rsyslog-server"`
	StatsdServer string         `yaml:"statsd-server"`
	GcMonitor    bool           `yaml:"gc-monitor"`
	Workload     WorkloadConfig `yaml:"workload"`
}

func (c *Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	c.LogLevel = "info"
	for _, l := range []string{"error", "warning", "info", "debug"} {
		if level == l {
			c.LogLevel = l
		}
	}

	if c.Workload.NodeCount <= 0 {
		c.Workload.NodeCount = 1 << 16
	}
	if c.Workload.Rounds <= 0 {
		c.Workload.Rounds = 100
	}
	if c.Workload.ReportEvery <= 0 {
		c.Workload.ReportEvery = 10 * time.Second
	}
	if c.Workload.NodeCount > 1<<28 {
		return errors.New("node-count is unreasonably large")
	}
	return nil
}

// Load返回path处的配置，path为空时返回缺省配置，
// 配置非法时直接退出进程
func Load(path string) Config {
	config := Config{}
	if path != "" {
		configBytes, err := os.ReadFile(path)
		if err != nil {
			log.Error("Read config file error:", err)
			os.Exit(1)
		}
		if err = yaml.Unmarshal(configBytes, &config); err != nil {
			log.Error("Unmarshal yaml error:", err)
			os.Exit(1)
		}
	}
	if err := config.Validate(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	return config
}

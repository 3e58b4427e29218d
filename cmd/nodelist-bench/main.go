package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/docker/go-units"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/Ennakelch/nodelist/config"
	"github.com/Ennakelch/nodelist/logger"
	"github.com/Ennakelch/nodelist/nodelist"
	"github.com/Ennakelch/nodelist/stats"
)

var log = logging.MustGetLogger("nodelist-bench")

var configPath string

func setup() config.Config {
	cfg := config.Load(configPath)
	if cfg.LogFile != "" {
		logger.InitLog(cfg.LogFile, cfg.LogLevel)
	} else {
		logger.InitConsoleLog(cfg.LogLevel)
	}
	if cfg.RsyslogSrv != "" {
		logger.EnableRsyslog(cfg.RsyslogSrv, "nodelist-bench")
	}
	if cfg.StatsdServer != "" {
		stats.SetRemote(cfg.StatsdServer)
	}
	if cfg.GcMonitor {
		stats.RegisterGcMonitor()
	}
	return cfg
}

func runAppend(cfg config.Config) {
	count := cfg.Workload.NodeCount
	nodes := make([]nodelist.Node[int], count)
	list := nodelist.New[int]()

	start := time.Now()
	for i := range nodes {
		nodes[i].Value = i
		if err := nodes[i].AttachToList(list); err != nil {
			log.Error("attach:", err)
			os.Exit(1)
		}
	}
	attachCost := time.Since(start)

	start = time.Now()
	forward := 0
	end := list.End().Iterator
	for it := list.Begin(); !it.Equal(end); it.Next() {
		forward++
	}
	forwardCost := time.Since(start)

	start = time.Now()
	reverse := 0
	rend := list.REnd().Iterator
	for it := list.RBegin(); !it.Equal(rend); it.Prev() {
		reverse++
	}
	reverseCost := time.Since(start)

	if forward != count || reverse != count {
		log.Errorf("traversal mismatch: forward=%d reverse=%d want=%d", forward, reverse, count)
		os.Exit(1)
	}

	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)
	fmt.Printf("attached %d nodes in %v\n", count, attachCost)
	fmt.Printf("forward traversal %v, reverse traversal %v\n", forwardCost, reverseCost)
	fmt.Printf("heap in use %s\n", units.BytesSize(float64(memStats.HeapInuse)))

	list.Close()
}

// 每轮把整条链倒手到standby，偶数值节点在遍历中就地摘除
// 搬回active，其余按原序追加，覆盖链表的全部修改路径
func churnRound(active, standby *nodelist.NodeList[int]) {
	standby.MoveFrom(active)

	it := standby.Begin()
	end := standby.End().Iterator
	for !it.Equal(end) {
		node := it.Node()
		if node.Value%2 == 0 {
			it.DetachAndAdvance()
			node.AttachToList(active)
			continue
		}
		it.Next()
	}

	for !standby.IsEmpty() {
		standby.Begin().Node().AttachToList(active)
	}
}

func runChurn(cfg config.Config) {
	if err := stats.RegisterCountable("nodelist", nodelist.StatsCounter(),
		stats.OptionStatTags{"workload": "churn"}, stats.OptionInterval(time.Second)); err != nil {
		log.Error("register countable:", err)
		os.Exit(1)
	}
	plog, err := logger.GetPrefixLogger("nodelist-bench", "[churn]")
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	count := cfg.Workload.NodeCount
	nodes := make([]nodelist.Node[int], count)
	active := nodelist.New[int]()
	standby := nodelist.New[int]()
	for i := range nodes {
		nodes[i].Value = i
		nodes[i].AttachToList(active)
	}

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	report := time.NewTicker(cfg.Workload.ReportEvery)
	defer report.Stop()

	start := time.Now()
	rounds := 0
loop:
	for ; rounds < cfg.Workload.Rounds; rounds++ {
		select {
		case <-signalChannel:
			plog.Infof("interrupted at round %d", rounds)
			break loop
		case <-report.C:
			plog.Infof("round %d, active=%d standby=%d", rounds, active.Size(), standby.Size())
		default:
		}
		churnRound(active, standby)
	}
	cost := time.Since(start)

	if size := active.Size(); size != count {
		plog.Errorf("node leak: active holds %d of %d", size, count)
	}
	for i := range nodes {
		nodes[i].Close()
	}
	active.Close()
	standby.Close()
	plog.Infof("done: %d rounds over %d nodes in %v", rounds, count, cost)
}

func main() {
	root := &cobra.Command{
		Use:   "nodelist-bench",
		Short: "Node list workload driver",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "f", "", "Specify config file location")
	root.AddCommand(&cobra.Command{
		Use:   "append",
		Short: "Build a list by appending, then traverse both ways",
		Run: func(cmd *cobra.Command, args []string) {
			runAppend(setup())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "churn",
		Short: "Steady-state attach/detach/move workload",
		Run: func(cmd *cobra.Command, args []string) {
			runChurn(setup())
		},
	})
	root.SetArgs(os.Args[1:])
	root.Execute()
}

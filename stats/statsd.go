package stats

import (
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"
	"gopkg.in/alexcesaro/statsd.v2"

	"github.com/Ennakelch/nodelist/nodelist"
)

var log = logging.MustGetLogger("stats")

type closable interface {
	Closed() bool
}

type statSource struct {
	module    string
	interval  time.Duration
	tags      OptionStatTags
	countable Countable
	client    *statsd.Client
	skip      int
}

var (
	lock    sync.Mutex
	running bool

	// 注册的统计源挂在自家的侵入式链表上，统计循环遍历时
	// 就地摘除已关闭的源
	sources = nodelist.New[*statSource]()

	remoteAddress string
	hostname, _   = os.Hostname()
	remoteClient  *statsd.Client
)

func setRemote(address string) {
	lock.Lock()
	defer lock.Unlock()
	remoteAddress = address
	if remoteClient != nil {
		remoteClient.Close()
		remoteClient = nil
	}
	// 已有源的client是remoteClient的克隆，一并重建
	for it := sources.Begin(); !it.Equal(sources.End().Iterator); it.Next() {
		it.Node().Value.client = nil
	}
}

func setHostname(name string) {
	lock.Lock()
	defer lock.Unlock()
	hostname = name
	if remoteClient != nil {
		remoteClient.Close()
		remoteClient = nil
	}
}

func registerCountable(module string, countable Countable, opts ...StatsOption) error {
	source := &statSource{
		module:    module,
		interval:  DEFAULT_INTERVAL,
		countable: countable,
	}
	for _, opt := range opts {
		switch v := opt.(type) {
		case OptionStatTags:
			source.tags = v
		case OptionInterval:
			source.interval = time.Duration(v)
		}
	}
	if source.interval < MinInterval {
		source.interval = MinInterval
	}

	lock.Lock()
	defer lock.Unlock()
	if err := nodelist.NewNode(source).AttachToList(sources); err != nil {
		return err
	}
	if !running {
		running = true
		go run()
	}
	return nil
}

func deregisterCountable(countable Countable) {
	lock.Lock()
	defer lock.Unlock()
	it := sources.Begin()
	for !it.Equal(sources.End().Iterator) {
		if it.Node().Value.countable == countable {
			it.DetachAndAdvance()
			continue
		}
		it.Next()
	}
}

func getRemoteClient() *statsd.Client {
	if remoteClient != nil {
		return remoteClient
	}
	if remoteAddress == "" {
		return nil
	}
	client, err := statsd.New(
		statsd.Address(remoteAddress),
		statsd.Prefix(hostname),
		statsd.TagsFormat(statsd.InfluxDB),
	)
	if err != nil {
		log.Warning("statsd connection failed:", err)
		return nil
	}
	remoteClient = client
	return remoteClient
}

func getSourceClient(source *statSource) *statsd.Client {
	if source.client != nil {
		return source.client
	}
	remote := getRemoteClient()
	if remote == nil {
		return nil
	}
	if len(source.tags) == 0 {
		source.client = remote
		return source.client
	}
	tags := make([]string, 0, len(source.tags)*2)
	for key, value := range source.tags {
		tags = append(tags, key, value)
	}
	source.client = remote.Clone(statsd.Tags(tags...))
	return source.client
}

// counterItems将GetCounter的返回值规整为StatItem：
// []StatItem原样返回，带statsd标签的结构按字段反射展开，
// 标签形如`statsd:"name"`或`statsd:"name,gauge"`
func counterItems(counter interface{}) []StatItem {
	if items, ok := counter.([]StatItem); ok {
		return items
	}
	value := reflect.Indirect(reflect.ValueOf(counter))
	if value.Kind() != reflect.Struct {
		return nil
	}
	structType := value.Type()
	items := make([]StatItem, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		tag, ok := structType.Field(i).Tag.Lookup("statsd")
		if !ok {
			continue
		}
		name := tag
		statType := COUNT_TYPE
		if index := strings.IndexRune(tag, ','); index >= 0 {
			name = tag[:index]
			if tag[index+1:] == "gauge" {
				statType = GAUGE_TYPE
			}
		}

		var fieldValue interface{}
		field := value.Field(i)
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fieldValue = field.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fieldValue = field.Uint()
		case reflect.Float32, reflect.Float64:
			fieldValue = field.Float()
		default:
			continue
		}
		items = append(items, StatItem{name, statType, fieldValue})
	}
	return items
}

func flushSource(source *statSource) {
	// 无论能否发送都要取走计数，Countable约定读取即清零
	items := counterItems(source.countable.GetCounter())
	client := getSourceClient(source)
	if client == nil {
		if log.IsEnabledFor(logging.DEBUG) {
			for _, item := range items {
				log.Debugf("%s.%s = %v", source.module, item.Name, item.Value)
			}
		}
		return
	}
	for _, item := range items {
		bucket := source.module + "." + item.Name
		if item.Type == GAUGE_TYPE {
			client.Gauge(bucket, item.Value)
		} else {
			client.Count(bucket, item.Value)
		}
	}
}

func run() {
	for range time.Tick(MinInterval) {
		lock.Lock()
		it := sources.Begin()
		for !it.Equal(sources.End().Iterator) {
			source := it.Node().Value
			if closed, ok := source.countable.(closable); ok && closed.Closed() {
				it.DetachAndAdvance()
				continue
			}
			source.skip--
			if source.skip <= 0 {
				flushSource(source)
				source.skip = int(source.interval / MinInterval)
			}
			it.Next()
		}
		lock.Unlock()
	}
}

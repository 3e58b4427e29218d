package stats

import (
	"testing"
	"time"
)

type testCounter struct {
	Hit       uint64  `statsd:"hit"`
	Miss      int32   `statsd:"miss"`
	Pending   uint    `statsd:"pending,gauge"`
	Ratio     float64 `statsd:"ratio,gauge"`
	ignored   uint64
	NoTag     uint64
	BadKind   string `statsd:"bad"`
	harvested bool
}

func (c *testCounter) GetCounter() interface{} {
	c.harvested = true
	return &testCounter{Hit: 7, Miss: -2, Pending: 3, Ratio: 0.5}
}

func TestCounterItemsFromStruct(t *testing.T) {
	items := counterItems(&testCounter{Hit: 7, Miss: -2, Pending: 3, Ratio: 0.5})
	if len(items) != 4 {
		t.Fatal("Should extract 4 items, actually", len(items))
	}
	expected := []StatItem{
		{"hit", COUNT_TYPE, uint64(7)},
		{"miss", COUNT_TYPE, int64(-2)},
		{"pending", GAUGE_TYPE, uint64(3)},
		{"ratio", GAUGE_TYPE, float64(0.5)},
	}
	for i, want := range expected {
		if items[i] != want {
			t.Errorf("Item %d should be %v, actually %v", i, want, items[i])
		}
	}
}

func TestCounterItemsPassthrough(t *testing.T) {
	input := []StatItem{{"duration", COUNT_TYPE, uint64(1)}}
	items := counterItems(input)
	if len(items) != 1 || items[0] != input[0] {
		t.Error("A []StatItem counter should pass through unchanged, actually", items)
	}
	if items := counterItems(42); items != nil {
		t.Error("A non-struct counter should produce nothing, actually", items)
	}
}

func TestRegisterDeregister(t *testing.T) {
	counter := &testCounter{}
	if err := RegisterCountable("test", counter,
		OptionStatTags{"k": "v"}, OptionInterval(time.Minute)); err != nil {
		t.Fatal("RegisterCountable failed:", err)
	}

	lock.Lock()
	found := 0
	end := sources.End().Iterator
	for it := sources.Begin(); !it.Equal(end); it.Next() {
		if it.Node().Value.countable == Countable(counter) {
			found++
			if it.Node().Value.interval != time.Minute {
				t.Error("Interval option should be honored")
			}
		}
	}
	lock.Unlock()
	if found != 1 {
		t.Error("Registered countable should appear exactly once, actually", found)
	}

	DeregisterCountable(counter)
	lock.Lock()
	end = sources.End().Iterator
	for it := sources.Begin(); !it.Equal(end); it.Next() {
		if it.Node().Value.countable == Countable(counter) {
			t.Error("Deregistered countable should be gone")
		}
	}
	lock.Unlock()
}

func TestFlushWithoutRemote(t *testing.T) {
	counter := &testCounter{}
	source := &statSource{module: "test", interval: time.Second, countable: counter}
	flushSource(source)
	if !counter.harvested {
		t.Error("Flush must drain the counter even with no remote configured")
	}
}

func TestOptionStatTagsString(t *testing.T) {
	tags := OptionStatTags{}
	if s := tags.String(); s != "{}" {
		t.Error("Should be {}, actually", s)
	}
	tags = OptionStatTags{"module": "nodelist"}
	if s := tags.String(); s != "{module: nodelist}" {
		t.Error("Should be {module: nodelist}, actually", s)
	}
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/xyhelper/handoffq/blockingqueue"
)

const (
	payloadInt  = "int"
	payloadUUID = "uuid"
)

type config struct {
	producers int
	consumers int
	items     int
	payload   string
}

type report struct {
	runID    uuid.UUID
	items    int
	consumed uint64
	elapsed  time.Duration
}

func (r report) nsPerItem() float64 {
	if r.items == 0 {
		return 0
	}
	return float64(r.elapsed.Nanoseconds()) / float64(r.items)
}

func (c config) validate() error {
	if c.producers <= 0 || c.consumers <= 0 {
		return errors.Errorf("need at least one producer and one consumer, got %d/%d", c.producers, c.consumers)
	}
	if c.items < 0 {
		return errors.Errorf("negative item count %d", c.items)
	}
	if c.payload != payloadInt && c.payload != payloadUUID {
		return errors.Errorf("unknown payload %q", c.payload)
	}
	return nil
}

// split divides n into parts shares that differ by at most one.
func split(n, parts int) []int {
	out := make([]int, parts)
	for i := range out {
		out[i] = n / parts
		if i < n%parts {
			out[i]++
		}
	}
	return out
}

func payloads(c config) []string {
	out := make([]string, c.items)
	for i := range out {
		if c.payload == payloadUUID {
			out[i] = uuid.NewString()
		} else {
			out[i] = strconv.Itoa(i)
		}
	}
	return out
}

// run pushes cfg.items distinct payloads through one queue and checks that
// each was consumed exactly once. Consumers start before producers so that
// early items are handed off rather than stored. Consume cannot be
// cancelled, so consumer quotas add up to exactly cfg.items.
func run(cfg config) (report, error) {
	if err := cfg.validate(); err != nil {
		return report{}, err
	}
	rep := report{runID: uuid.New(), items: cfg.items}
	items := payloads(cfg)
	q := blockingqueue.New[string]()

	received := make([][]string, cfg.consumers)
	var consumers errgroup.Group
	start := time.Now()
	for i, quota := range split(cfg.items, cfg.consumers) {
		consumers.Go(func() error {
			got := make([]string, 0, quota)
			for j := 0; j < quota; j++ {
				v, err := q.Consume()
				if err != nil {
					return errors.Wrapf(err, "consumer %d", i)
				}
				got = append(got, v)
			}
			received[i] = got
			return nil
		})
	}

	var producers errgroup.Group
	off := 0
	for i, share := range split(cfg.items, cfg.producers) {
		batch := items[off : off+share]
		off += share
		producers.Go(func() error {
			for _, v := range batch {
				if err := q.Produce(v); err != nil {
					return errors.Wrapf(err, "producer %d", i)
				}
			}
			return nil
		})
	}
	if err := producers.Wait(); err != nil {
		return rep, err
	}
	if err := consumers.Wait(); err != nil {
		return rep, err
	}
	rep.elapsed = time.Since(start)
	rep.consumed = q.ConsumedCount()

	if err := verify(items, received); err != nil {
		return rep, err
	}
	if rep.consumed != uint64(cfg.items) {
		return rep, errors.Errorf("consumed count %d, want %d", rep.consumed, cfg.items)
	}
	if n := q.Len(); n != 0 {
		return rep, errors.Errorf("%d items left in store", n)
	}
	return rep, errors.Wrap(q.Teardown(), "teardown")
}

// verify checks that received holds every produced item exactly once.
func verify(produced []string, received [][]string) error {
	seen := make(map[string]int, len(produced))
	for _, v := range produced {
		seen[v] = 0
	}
	for _, got := range received {
		for _, v := range got {
			n, ok := seen[v]
			if !ok {
				return errors.Errorf("consumed unknown item %q", v)
			}
			if n > 0 {
				return errors.Errorf("item %q consumed twice", v)
			}
			seen[v] = n + 1
		}
	}
	for v, n := range seen {
		if n == 0 {
			return errors.Errorf("item %q never consumed", v)
		}
	}
	return nil
}

func (r report) String() string {
	return fmt.Sprintf("run %s: %d items, consumed=%d, %v (%.2f ns/item)",
		r.runID, r.items, r.consumed, r.elapsed, r.nsPerItem())
}

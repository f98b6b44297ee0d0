// Command qstress drives a blockingqueue.Queue with concurrent producers and
// consumers and verifies exactly-once delivery.
//
// Usage:
//
//	go run ./cmd/qstress -producers 4 -consumers 8 -items 1000000 -payload uuid -fgprof wall.pprof
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/felixge/fgprof"

	"github.com/xyhelper/handoffq/blockingqueue"
)

var fgprofFile = flag.String("fgprof", "", "write wall-clock profile to `file`")

func main() {
	var cfg config
	flag.IntVar(&cfg.producers, "producers", runtime.GOMAXPROCS(0), "number of producer goroutines")
	flag.IntVar(&cfg.consumers, "consumers", runtime.GOMAXPROCS(0), "number of consumer goroutines")
	flag.IntVar(&cfg.items, "items", 1_000_000, "number of items to produce")
	flag.StringVar(&cfg.payload, "payload", payloadInt, "item payload: int or uuid")
	verbose := flag.Bool("v", false, "log queue lifecycle events")
	flag.Parse()
	blockingqueue.Logging = *verbose

	if *fgprofFile != "" {
		f, err := os.Create(*fgprofFile)
		if err != nil {
			log.Fatal("could not create fgprof profile: ", err)
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Print("could not write fgprof profile: ", err)
			}
		}()
	}

	fmt.Printf("Stressing hand-off queue (%d producers, %d consumers, %d %s items)\n",
		cfg.producers, cfg.consumers, cfg.items, cfg.payload)
	fmt.Println("─────────────────────────────────────────────────")

	rep, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qstress: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(rep)
	if ns := rep.nsPerItem(); ns > 0 {
		fmt.Printf("Throughput: %.2f M items/sec\n", 1000/ns)
	}
}

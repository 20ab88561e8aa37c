package main

import (
	"flag"
	"fmt"
	"github.com/fernandosanchezjr/gomseq/analysis"
	"github.com/fernandosanchezjr/gomseq/config"
	"github.com/fernandosanchezjr/gomseq/logging"
	"github.com/fernandosanchezjr/gomseq/search"
	"github.com/fernandosanchezjr/gomseq/sequence"
	"github.com/fernandosanchezjr/gomseq/server"
	"github.com/fernandosanchezjr/gomseq/utils"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"path"
	"runtime/pprof"
)

var registerLength uint
var bitsPerSymbol uint
var searchLength uint
var serve bool
var cpuProfile bool
var exitChannel chan os.Signal

func init() {
	flag.UintVar(&registerLength, "m", 7, "register length of the default sequence to print")
	flag.UintVar(&bitsPerSymbol, "bps", 0, "pack one period into symbols of this many bits")
	flag.UintVar(&searchLength, "search", 0, "search primitive polynomials for this register length")
	flag.BoolVar(&serve, "serve", false, "start the sequence server")
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	exitChannel = make(chan os.Signal, 1)
}

func wait() {
	signal.Notify(exitChannel, os.Interrupt)
	signal.Notify(exitChannel, os.Kill)
	<-exitChannel
}

func runServer() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	svc := server.NewService(cfg)
	go func() {
		if err := svc.Start(); err != nil {
			log.Fatal(err)
		}
	}()
	wait()
}

func runSearch() {
	store, err := search.OpenStore(path.Join(utils.GetSubFolder("db"), "polynomials.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()
	found, err := store.Find(uint32(searchLength), 0)
	if err != nil {
		log.Fatal(err)
	}
	for _, g := range found {
		fmt.Printf("%#x\n", g)
	}
}

func printSequence() {
	ms, err := sequence.NewDefault(uint32(registerLength))
	if err != nil {
		log.Fatal(err)
	}
	ms.Print()
	bs := sequence.NewBSequence()
	sequence.FillBuffer(bs, ms)
	for i := 0; i < bs.Len(); i++ {
		fmt.Print(bs.Bit(i))
	}
	fmt.Println()
	if bitsPerSymbol > 0 {
		ms.Reset()
		for i := uint32(0); i < ms.Length(); i += uint32(bitsPerSymbol) {
			fmt.Printf("%#x\n", ms.GenerateSymbol(uint32(bitsPerSymbol)))
		}
	}
	ones, zeros := analysis.Balance(bs)
	log.WithFields(log.Fields{
		"m":     ms.GenPolyLength(),
		"n":     ms.Length(),
		"ones":  ones,
		"zeros": zeros,
	}).Infoln("Sequence")
}

func main() {
	flag.Parse()
	logging.SetupLogger()
	if cpuProfile {
		f, err := os.Create("gomseq.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	switch {
	case serve:
		runServer()
	case searchLength > 0:
		runSearch()
	default:
		printSequence()
	}
}

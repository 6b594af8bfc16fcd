package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/lwanderer/ramrsbd"
)

func main() {
	var codeSize = pflag.IntP("code-size", "n", 16, "codeword size in bytes")
	var eccSize = pflag.IntP("ecc-size", "e", 4, "parity bytes per codeword")
	var eraseCount = pflag.IntP("erase-count", "c", 4, "number of erase blocks")
	var correction = pflag.IntP("error-correction", "t", 0, "0 = correct up to floor(ecc/2), >0 caps correctable errors, -1 detect-only")
	var corrupt = pflag.IntP("corrupt", "x", 0, "number of random byte errors to inject into block 0 before reading back")
	var verbose = pflag.BoolP("verbose", "v", false, "enable debug logging")
	var help = pflag.Bool("help", false, "display help text")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - exercise a Reed-Solomon RAM block device end to end.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Creates a device, programs a message, optionally corrupts the\n")
		fmt.Fprintf(os.Stderr, "backing RAM, and reads the message back to show correction.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	n := *codeSize
	nk := *eccSize
	k := n - nk

	cfg := ramrsbd.Config{
		CodeSize:        n,
		ECCSize:         nk,
		EraseSize:       n,
		EraseCount:      *eraseCount,
		ErrorCorrection: *correction,
		ReadSize:        k,
		ProgSize:        k,
		BlockSize:       k,
	}

	ram := make([]byte, cfg.EraseSize*cfg.EraseCount)
	dev, err := ramrsbd.NewDevice(cfg, ramrsbd.WithBuffer(ram), ramrsbd.WithLogger(logger))
	if err != nil {
		logger.Fatal("create device", "err", err)
	}
	defer dev.Close()

	message := make([]byte, k)
	for i := range message {
		message[i] = byte(i)
	}

	if err := dev.ProgAt(0, 0, message); err != nil {
		logger.Fatal("program block", "err", err)
	}
	logger.Info("programmed", "block", 0, "bytes", k)

	if *corrupt > 0 {
		positions := rand.Perm(n)[:min(*corrupt, n)]
		for _, p := range positions {
			ram[p] ^= byte(1 + rand.Intn(255))
		}
		logger.Info("injected errors", "count", len(positions), "positions", positions)
	}

	readBack := make([]byte, k)
	if err := dev.ReadAt(0, 0, readBack); err != nil {
		logger.Error("read block", "err", err)
		os.Exit(1)
	}

	if string(readBack) == string(message) {
		fmt.Printf("OK: read back matches original message (corrected %d byte(s))\n", dev.LastCorrected())
	} else {
		fmt.Printf("MISMATCH: read back does not match original message\n")
		os.Exit(1)
	}
}

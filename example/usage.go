package main

import (
	"fmt"

	"github.com/lwanderer/ramrsbd"
)

func main() {
	cfg := ramrsbd.Config{
		CodeSize:        16,
		ECCSize:         4,
		EraseSize:       16,
		EraseCount:      4,
		ErrorCorrection: 0,
		ReadSize:        12,
		ProgSize:        12,
		BlockSize:       12,
	}

	// Own the backing RAM ourselves so the example can poke at it directly,
	// the same way a host filesystem driver would if it mapped this device
	// onto a real memory region.
	ram := make([]byte, cfg.EraseSize*cfg.EraseCount)

	fmt.Printf("Creating a %d-block device, %d-byte codewords with %d parity bytes\n",
		cfg.EraseCount, cfg.CodeSize, cfg.ECCSize)

	dev, err := ramrsbd.NewDevice(cfg, ramrsbd.WithBuffer(ram))
	if err != nil {
		fmt.Printf("Error creating device: %v\n", err)
		return
	}
	defer dev.Close()

	message := []byte("Hello, RAM!!")
	fmt.Printf("Programming message: %q\n", message)

	if err := dev.ProgAt(0, 0, message); err != nil {
		fmt.Printf("Error programming block: %v\n", err)
		return
	}

	readBack := make([]byte, len(message))
	if err := dev.ReadAt(0, 0, readBack); err != nil {
		fmt.Printf("Error reading block: %v\n", err)
		return
	}
	fmt.Printf("Read back: %q\n", readBack)

	// Flip a byte of the stored codeword directly, simulating a bit-rot
	// event on the backing RAM, and show the device correcting it
	// transparently on the next read.
	fmt.Println("Flipping a byte of stored media to simulate corruption...")
	ram[3] ^= 0xFF

	readBack2 := make([]byte, len(message))
	if err := dev.ReadAt(0, 0, readBack2); err != nil {
		fmt.Printf("Error reading after corruption: %v\n", err)
		return
	}
	fmt.Printf("Read back after corruption: %q (corrected %d byte(s))\n",
		readBack2, dev.LastCorrected())

	if string(readBack2) == string(message) {
		fmt.Println("SUCCESS: message survived and matches original!")
	} else {
		fmt.Println("FAILURE: message mismatch.")
	}
}

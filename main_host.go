//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Thoq-jar/qubit/app"
	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/store"
)

func main() {
	consoleMode := flag.String("console", "window", "Console backend: window or term.")
	image := flag.String("store", "", "Store image file to mount (see cmd/mkstore).")
	root := flag.String("root", "", "Host directory to mount as an extra read-only store.")
	flag.Parse()

	var cfg app.Config
	if *image != "" {
		b, err := os.ReadFile(*image)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		is, err := store.MountBytes(b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.ExtraStores = append(cfg.ExtraStores, is)
	}
	if *root != "" {
		ds, err := store.OpenDir(*root)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.ExtraStores = append(cfg.ExtraStores, ds)
	}

	switch *consoleMode {
	case "window":
		if err := hal.RunWindow(func(h hal.HAL) func() error {
			return app.NewWithConfig(h, cfg)
		}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "term":
		if err := app.RunTerminal(hal.New(), cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown console backend %q (want window or term)\n", *consoleMode)
		os.Exit(1)
	}
}

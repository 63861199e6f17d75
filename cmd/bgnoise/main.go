// Command bgnoise synthesizes and analyzes underwater ambient noise.
//
// Usage:
//
//	bgnoise generate --sea 3 --rain light --shipping level_2 --duration 10s -o noise.wav
//	bgnoise spectrum --sea 3 --rain light --fs 96000 > reference.csv
//	bgnoise estimate --window-size 4096 recording.wav > estimate.csv
//	bgnoise validate --sea 0 --duration 10s --band-low 100 --band-high 10000
//
// Settings come from flags, BGNOISE_* environment variables or a YAML
// config file (./bgnoise.yaml by default). Logs go to stderr and, when
// log.file is set, to a rotated JSON file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

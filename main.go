package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"ttsicons/batch"
	"ttsicons/log"
	"ttsicons/render"
)

var version = "dev"

func main() {
	defaults := batch.DefaultConfig()

	outFlag := flag.String("out", defaults.Dir, "Output directory for the generated icons")
	backendFlag := flag.String("backend", render.DefaultBackend, "Drawing backend: rasterx or vector")
	icoFlag := flag.Bool("ico", false, "Also bundle all sizes into icon.ico")
	previewFlag := flag.Bool("preview", false, "Show the generated icons in a window (needs -tags gui)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("ttsicons %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not resolve log directory: %v\n", err)
	} else {
		log.SetDir(logPath)
		if err := log.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
		}
	}
	defer log.Close()

	cfg := batch.Config{
		Dir:     *outFlag,
		Sizes:   defaults.Sizes,
		Backend: render.Lookup(*backendFlag),
		ICO:     *icoFlag,
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	sum, err := batch.Run(cfg, batch.NewConsole(os.Stdout, color))
	if err != nil {
		log.Errorf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Close()
		os.Exit(1)
	}

	if *previewFlag {
		if err := showPreview(sum); err != nil {
			log.Warnf("preview: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

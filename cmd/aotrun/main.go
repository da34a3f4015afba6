// Command aotrun is the native launcher for ahead-of-time compiled images.
//
// Launcher flags configure the host side only; everything after them passes
// through to the guest unmodified.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	aotboot "github.com/wippyai/aot-boot"
	"github.com/wippyai/aot-boot/boot"
	"github.com/wippyai/aot-boot/engine"
	"github.com/wippyai/aot-boot/image"
	"github.com/wippyai/aot-boot/runtime"
)

func main() {
	var (
		imagePath    = flag.String("image", "", "Path to compiled image")
		manifestPath = flag.String("manifest", "", "Path to image manifest (optional)")
		entryName    = flag.String("entry", "", "Entry symbol (default from manifest or convention)")
		list         = flag.Bool("list", false, "List image exports and exit")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: aotrun -image <file.wasm> [-entry name] [guest args...]")
		fmt.Fprintln(os.Stderr, "       aotrun -image <file.wasm> -list")
		fmt.Fprintln(os.Stderr, "       aotrun -image <file.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	entry, err := resolveEntry(*entryName, *manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*imagePath, entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	status, err := run(*imagePath, entry, *list, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(status)
}

// resolveEntry picks the entry symbol: explicit flag, then manifest, then
// convention. A manifest naming an arguments binding other than the fixed
// (core, ARGS) convention is rejected, since that is the contract the
// runtime provides.
func resolveEntry(flagEntry, manifestPath string) (string, error) {
	if manifestPath != "" {
		m, err := image.LoadManifest(manifestPath)
		if err != nil {
			return "", err
		}
		if m.Args.Namespace != aotboot.CoreNamespace || m.Args.Symbol != aotboot.ArgsSymbol {
			return "", fmt.Errorf("manifest names args binding %s/%s; this runtime provides %s/%s",
				m.Args.Namespace, m.Args.Symbol, aotboot.CoreNamespace, aotboot.ArgsSymbol)
		}
		if flagEntry == "" {
			return m.Entry, nil
		}
	}
	if flagEntry == "" {
		return aotboot.DefaultEntrySymbol, nil
	}
	return flagEntry, nil
}

func run(imagePath, entryName string, listOnly bool, guestArgs []string) (int, error) {
	ctx := context.Background()

	img, err := image.FromFile(imagePath)
	if err != nil {
		return 0, err
	}

	rt := runtime.New()
	defer rt.Close(ctx)

	if listOnly {
		if err := rt.Initialize(ctx, img); err != nil {
			return 0, err
		}
		fmt.Printf("Image: %s (%d bytes)\n", img.Name(), img.Size())
		fmt.Printf("\nExported functions:\n")
		for _, name := range rt.Exports() {
			fmt.Printf("  %s\n", name)
		}
		return 0, nil
	}

	return boot.Run(ctx, rt, rt.Entry(entryName), img, guestArgs)
}

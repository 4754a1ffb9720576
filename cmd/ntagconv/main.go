package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/flipdev/ntagconv/internal/batch"
	"github.com/flipdev/ntagconv/pkg/logging"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	inputPath   string
	outputPath  string
	tree        bool
	workers     int
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "ntagconv",
		Short: "Convert NTAG215 dumps to Flipper .nfc files",
		Long: `Convert raw NTAG215 dumps (.bin) into Flipper .nfc text files, or
retrofit PWD/PACK authentication pages into existing .nfc files.`,
		Run: runConvert,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Single file or directory tree to convert (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Directory to store output in; created if missing. Defaults to the input file's directory for single-file input")
	rootCmd.Flags().BoolVarP(&tree, "tree", "t", false, "Mirror the input folder structure under the output folder")
	rootCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of concurrent file conversions")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("ntagconv %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("ntagconv %s\n", version)
		return
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("ntagconv", level, nil)

	info, err := os.Stat(inputPath)
	if err != nil {
		logger.Error("❌ cannot stat input", "path", inputPath, "error", err)
		os.Exit(1)
	}
	if info.IsDir() && outputPath == "" {
		logger.Error("❌ input is a directory, but no output path given", "path", inputPath)
		os.Exit(1)
	}

	inRoot, files, err := batch.Gather(inputPath)
	if err != nil {
		logger.Error("❌ failed to gather files", "path", inputPath, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Warn("no .bin or .nfc files found", "path", inputPath)
		return
	}

	outRoot := outputPath
	if outRoot == "" {
		outRoot = inRoot // single-file input, output next to it
	}
	if err := os.MkdirAll(outRoot, 0755); err != nil {
		logger.Error("❌ failed to create output directory", "path", outRoot, "error", err)
		os.Exit(1)
	}

	logger.Debug("starting batch", "input", inRoot, "output", outRoot, "files", len(files), "workers", workers)
	st := batch.Run(logger, files, inRoot, outRoot, tree, workers)

	logger.Info("📊 batch finished",
		"total", st.Total,
		"converted", st.Converted,
		"patched", st.Patched,
		"skipped", st.Skipped,
		"failed", st.Failed,
	)
	if st.Failed > 0 {
		os.Exit(1)
	}
}

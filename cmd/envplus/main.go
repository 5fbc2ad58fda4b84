package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	envplus "github.com/Jint3x/env-plus"
	"github.com/Jint3x/env-plus/internal/config"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		filePath    string
		comment     string
		delimiter   string
		overwrite   bool
		profilePath string
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&filePath, "file", config.DefaultFile, "Path to the env file to load")
	flag.StringVar(&comment, "comment", config.DefaultComment, "Comment marker; everything after its first occurrence on a line is ignored")
	flag.StringVar(&delimiter, "delimiter", config.DefaultDelimiter, "Key/value delimiter; only the first occurrence splits a line")
	flag.BoolVar(&overwrite, "overwrite", false, "Replace environment variables that are already set")
	flag.StringVar(&profilePath, "config", "", "Path to a YAML profile (defaults to ./.envplus.yaml when present)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if showVersion {
		fmt.Printf("envplus %s (commit %s, built %s)\n", BuildVersion, BuildCommit, BuildDate)
		return
	}

	flagsSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagsSet[f.Name] = true })

	if profilePath == "" {
		profilePath = config.FindDefaultProfilePath()
	}
	var fc config.FileConfig
	if profilePath != "" {
		loaded, err := config.LoadProfile(profilePath)
		if err != nil {
			log.Fatal().Err(err).Str("config", profilePath).Msg("profile could not be loaded")
		}
		fc = loaded
		log.Debug().Str("config", profilePath).Msg("profile loaded")
	}

	ev, err := config.ReadEnvOverrides()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid ENVPLUS_* override")
	}

	cfg := config.Merge(config.Config{
		File:      filePath,
		Comment:   comment,
		Delimiter: delimiter,
		Overwrite: overwrite,
	}, flagsSet, ev, fc)
	log.Debug().
		Str("file", cfg.File).
		Str("comment", cfg.Comment).
		Str("delimiter", cfg.Delimiter).
		Bool("overwrite", cfg.Overwrite).
		Msg("resolved configuration")

	ok := envplus.New().
		WithFile(cfg.File).
		WithComment(cfg.Comment).
		WithDelimiter(cfg.Delimiter).
		WithOverwrite(cfg.Overwrite).
		Activate()
	if !ok {
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Debug().Msg("no command given; environment loaded")
		return
	}

	// The child inherits the process environment populated above.
	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		log.Error().Err(err).Str("command", args[0]).Msg("command could not be run")
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	pkglog "github.com/trstruth/masuda/pkg/log"
	"github.com/trstruth/masuda/pkg/pokemon"
)

func main() {
	fs := pflag.NewFlagSet("pidcalc", pflag.ExitOnError)
	logLevel := fs.String("log-level", "info", "Log level.")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: pidcalc <pid-hex> [<tid> <sid>]")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	pkglog.Init(pkglog.Config{
		Level:       *logLevel,
		ServiceName: "pidcalc",
	})
	logger := pkglog.L()

	pid, profile, err := parseArgs(fs.Args())
	if err != nil {
		logger.Fatal().Err(err).Strs("args", fs.Args()).Msg("invalid arguments")
	}

	fmt.Print(pokemon.Describe(pid, profile))
}

func parseArgs(args []string) (uint32, *pokemon.Profile, error) {
	if len(args) != 1 && len(args) != 3 {
		return 0, nil, fmt.Errorf("expected <pid-hex> [<tid> <sid>], got %d arguments", len(args))
	}

	raw := strings.TrimPrefix(strings.ToLower(args[0]), "0x")
	pid, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, nil, fmt.Errorf("pid %q: %w", args[0], err)
	}
	if len(args) == 1 {
		return uint32(pid), nil, nil
	}

	tid, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return 0, nil, fmt.Errorf("tid %q: %w", args[1], err)
	}
	sid, err := strconv.ParseUint(args[2], 10, 16)
	if err != nil {
		return 0, nil, fmt.Errorf("sid %q: %w", args[2], err)
	}
	profile := pokemon.NewProfile(uint16(tid), uint16(sid))
	return uint32(pid), &profile, nil
}

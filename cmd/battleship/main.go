package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"battleship/internal/app"
	"battleship/internal/config"
	"battleship/internal/shell"
	"battleship/internal/zk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd, args := "play", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}
	switch cmd {
	case "play":
		cmdPlay(cfg, args)
	case "keys":
		cmdKeys(cfg, args)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println(`Battleship

Commands:
  play [--seed N] [--audit off|merkle|zk] [--keys DIR] [--auto] [--reveal]
  keys [--keys DIR]

Environment: BATTLESHIP_LOG_LEVEL, BATTLESHIP_SEED, BATTLESHIP_AUDIT,
BATTLESHIP_KEYS_DIR, BATTLESHIP_PLAYER_NAME (also read from .env).`)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()
}

func cmdPlay(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Uint64("seed", cfg.Seed, "computer random seed (0 = random)")
	audit := fs.String("audit", cfg.Audit, "fair-play audit: off, merkle or zk")
	keys := fs.String("keys", cfg.KeysDir, "groth16 keys directory (zk audit)")
	name := fs.String("name", cfg.PlayerName, "player name")
	auto := fs.Bool("auto", false, "place your fleet at random")
	reveal := fs.Bool("reveal", false, "show the computer's ships")
	_ = fs.Parse(args)

	log := newLogger(cfg.LogLevel)
	mode, err := app.ParseAuditMode(*audit)
	if err != nil {
		log.Fatal().Err(err).Msg("bad audit mode")
	}
	if mode == app.AuditZK {
		log.Info().Str("keys", *keys).Msg("loading shot circuit, first run generates keys")
	}

	sess, err := app.NewSession(app.Options{
		HumanName: *name,
		Seed:      *seed,
		Audit:     mode,
		KeysDir:   *keys,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("start session")
	}

	winner, err := shell.New(sess, os.Stdin, os.Stdout, shell.Options{AutoPlace: *auto, Reveal: *reveal}).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Info().Stringer("winner", winner).Int("turns", sess.Match().Turns()).Msg("game over")
}

func cmdKeys(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	keys := fs.String("keys", cfg.KeysDir, "keys directory")
	_ = fs.Parse(args)

	log := newLogger(cfg.LogLevel)
	start := time.Now()
	if err := zk.EnsureShotKeys(*keys); err != nil {
		log.Fatal().Err(err).Msg("generate keys")
	}
	log.Info().Str("dir", *keys).Dur("took", time.Since(start)).Msg("shot keys ready")
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sqweek/dialog"
)

var (
	baseDir    string
	silent     bool
	blockSound bool
	debugMode  bool
)

func main() {
	flag.BoolVar(&debugMode, "debug", false, "verbose/debug logging")
	flag.BoolVar(&silent, "silent", false, "suppress on-screen error notifications")
	flag.BoolVar(&blockSound, "mute", false, "disable all sound")
	noPresence := flag.Bool("no-presence", false, "disable Discord rich presence")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	setupLogging(debugMode)
	initSoundContext()

	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if !*noPresence {
		initDiscordRPC(ctx)
	}

	if err := runGame(ctx); err != nil {
		logError("ebiten: %v", err)
		dialog.Message("Stardrift could not start:\n%v", err).Title("Stardrift").Error()
	}
}

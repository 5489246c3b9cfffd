package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"morris/internal/cli"
	"morris/internal/morris"
	"morris/internal/server/game"
)

func main() {
	os.Exit(run())
}

// run 返回进程退出码；所有清理都在 run 内完成，main 只负责退出
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic: %v", r)
			code = 2
		}
	}()

	settingsPath := flag.String("settings", cli.DefaultSettingsPath, "path to JSON settings file")
	first := flag.String("first", "", "first player (white/black); asked interactively when empty")
	position := flag.String("position", "", "start from a notation string instead of the empty board")
	writeSettings := flag.Bool("write-settings", false, "write the effective settings back to the settings file")
	flag.Parse()

	settings, err := cli.LoadSettings(*settingsPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("load settings %s: %v", *settingsPath, err)
			return 1
		}
		settings = cli.NewSettings()
	}
	if *first != "" {
		c, err := morris.ParseColor(*first)
		if err != nil {
			log.Printf("invalid -first: %v", err)
			return 1
		}
		settings.FirstPlayer = c
	}
	if *writeSettings {
		if err := cli.StoreSettings(*settingsPath, settings); err != nil {
			log.Printf("store settings %s: %v", *settingsPath, err)
			return 1
		}
		log.Printf("settings written to %s", *settingsPath)
	}

	console := cli.NewConsole(os.Stdin, os.Stdout, settings.Glyphs())
	cli.PrintWelcome(os.Stdout, *settingsPath)

	m := game.NewManager()
	var s *game.GameState
	if *position != "" {
		s, err = m.Restore(*position)
		if err != nil {
			log.Print(err)
			return 1
		}
	} else {
		color := settings.FirstPlayer
		if !color.Valid() {
			color, err = console.AskFirstPlayer()
			if err != nil {
				return exitCode(err)
			}
		}
		s = m.NewGame(color)
	}
	defer func() {
		if err := m.Close(s.ID); err != nil {
			log.Print(err)
		}
	}()

	play := func(in morris.Input, report func(error)) error {
		_, err := m.Play(s.ID, in, report)
		return err
	}
	return exitCode(console.Run(s.Game, play))
}

// exitCode 把对局结束的原因换成退出码；主动退出和输入结束都算正常
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrQuit):
		log.Print("bye")
		return 0
	case errors.Is(err, io.EOF):
		log.Print("input closed")
		return 0
	}
	log.Print(err)
	return 1
}

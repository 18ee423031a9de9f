// Command invaders8080 is the cabinet front end: it prompts for a
// title and display scale, loads the chosen ROM set, and runs the
// interpreter behind an ebiten window and oto audio, the concrete
// wiring spec.md's CLI surface leaves to an external collaborator.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/h-boehm/invaders8080/arcade"
	"github.com/h-boehm/invaders8080/audio"
	"github.com/h-boehm/invaders8080/cpu8080"
	"github.com/h-boehm/invaders8080/input"
	"github.com/h-boehm/invaders8080/romset"
	"github.com/h-boehm/invaders8080/video"
)

var mainLog = slog.Default().With("component", "main")

func main() {
	app := &cli.App{
		Name:  "invaders8080",
		Usage: "Space Invaders arcade cabinet emulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "roms",
				Usage: "directory containing the ROM segment files",
				Value: "./roms",
			},
			&cli.StringFlag{
				Name:  "sounds",
				Usage: "directory containing the 0.wav..8.wav sample files",
				Value: "./sounds",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		mainLog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	reader := bufio.NewReader(os.Stdin)

	title, err := promptTitle(reader)
	if err != nil {
		return err
	}
	scale, err := promptScale(reader)
	if err != nil {
		return err
	}
	if err := promptStart(reader); err != nil {
		return err
	}

	machine := arcade.NewMachine()
	if err := romset.Load(c.String("roms"), title, &machine.CPU.Mem); err != nil {
		return err
	}

	player, err := audio.NewOtoPlayer(c.String("sounds"))
	if err != nil {
		return err
	}
	defer player.Close()
	soundBoard := arcade.NewSoundBoard(machine, player)

	surf := video.NewEbitenSurface(scale)
	var framebuffer arcade.Framebuffer
	keymap := input.NewEbitenKeymap(machine)
	sched := arcade.NewScheduler(machine)
	clock := arcade.NewSystemClock()

	surf.OnFrame = func() {
		keymap.Update()
		if _, err := sched.Tick(clock.NowMicros()); err != nil {
			if fault, ok := err.(*cpu8080.Fault); ok {
				mainLog.Error("cpu fault", "pc", fault.PC, "opcode", fault.Opcode, "reason", fault.Reason)
			} else {
				mainLog.Error("scheduler error", "err", err)
			}
			os.Exit(1)
		}
		soundBoard.Poll()
		surf.Clear()
		framebuffer.Render(&machine.CPU.Mem, surf, scale)
	}

	mainLog.Info("starting", "title", title.String(), "scale", scale)
	if err := surf.Run(fmt.Sprintf("%s (invaders8080)", title)); err != nil {
		return &arcade.ErrVideoInit{Err: err}
	}
	return nil
}

func promptTitle(r *bufio.Reader) (romset.Title, error) {
	fmt.Println("Select game:")
	fmt.Println("  1. Space Invaders")
	fmt.Println("  2. Lunar Rescue")
	fmt.Println("  3. Balloon Bomber")
	fmt.Println("  4. Space Invaders Deluxe")
	line, err := readLine(r, "> ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > 4 {
		return 0, fmt.Errorf("invalid game selection %q", line)
	}
	return romset.Title(n), nil
}

func promptScale(r *bufio.Reader) (int, error) {
	line, err := readLine(r, "Scale (1-3): ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > 3 {
		return 0, fmt.Errorf("invalid scale selection %q", line)
	}
	return n, nil
}

func promptStart(r *bufio.Reader) error {
	for {
		line, err := readLine(r, "Press S to start: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(line, "s") {
			return nil
		}
	}
}

func readLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zkaedii/playground-zkaedi/internal/app"
	"github.com/zkaedii/playground-zkaedi/internal/config"
	"github.com/zkaedii/playground-zkaedi/internal/ui/banner"
	"github.com/zkaedii/playground-zkaedi/pkg/greeting"
)

func main() {
	interactive := flag.Bool("i", false, "prompt for a name interactively")
	card := flag.Bool("banner", false, "render the greeting as a styled card")
	flag.Parse()

	if *interactive {
		// A broken theme file should not block greeting; fall back to defaults
		cfg, _ := config.Load()
		if _, err := tea.NewProgram(app.New(cfg)).Run(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	name := greeting.DefaultName
	if args := flag.Args(); len(args) > 0 {
		name = strings.Join(args, " ")
	}

	if *card {
		cfg, _ := config.Load()
		b := banner.New(cfg.Theme)
		b.SetName(name)
		fmt.Println(b.View())
		return
	}

	fmt.Println(greeting.Greet(name))
}

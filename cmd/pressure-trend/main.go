package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/pressure-trend/internal/config"
	"github.com/ngmaloney/pressure-trend/internal/input"
	"github.com/ngmaloney/pressure-trend/internal/log"
	"github.com/ngmaloney/pressure-trend/internal/models"
	"github.com/ngmaloney/pressure-trend/internal/trend"
	"github.com/ngmaloney/pressure-trend/internal/ui"
)

var version = "dev"

var errUsage = errors.New("usage")

func main() {
	unitName := flag.String("unit", "", "Unit the readings are given in: inHg, hPa, kPa or custom (default from PRESSURE_UNIT, else inHg)")
	jsonOut := flag.Bool("json", false, "Print the result as JSON (requires readings)")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [current 1h-ago 2h-ago 3h-ago]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "With no readings an interactive calculator starts.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("pressure-trend %s\n", version)
		return
	}

	if err := run(*unitName, *jsonOut, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(unitName string, jsonOut bool, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := log.Init(cfg.LogLevel, cfg.LogFile, cfg.AppEnv == "prod"); err != nil {
		return err
	}
	defer log.Sync()

	unit := cfg.DefaultUnit
	if unitName != "" {
		if unit, err = models.ParseUnit(unitName); err != nil {
			return err
		}
	}

	switch len(args) {
	case 0:
		if jsonOut {
			return fmt.Errorf("%w: -json requires four readings", errUsage)
		}
		return runInteractive(unit)
	case 4:
		return runOnce(os.Stdout, args, unit, jsonOut)
	default:
		return fmt.Errorf("%w: expected 4 readings, got %d", errUsage, len(args))
	}
}

// runOnce computes a single trend from positional readings and prints it
func runOnce(w io.Writer, args []string, unit models.Unit, jsonOut bool) error {
	readings, err := input.ParseArgs(args)
	if err != nil {
		log.Warnw("rejected readings", "args", args, "err", err)
		return err
	}

	res, err := trend.Calculate(readings, unit)
	if err != nil {
		log.Errorw("trend calculation failed", "unit", unit.String(), "err", err)
		return err
	}
	log.Infow("trend computed",
		"unit", unit.String(),
		"station_model", res.StationModelCode(),
		"symbol", res.TendencySymbol,
	)

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	_, err = fmt.Fprintln(w, ui.RenderReport(res))
	return err
}

func runInteractive(unit models.Unit) error {
	log.Infow("starting interactive calculator", "default_unit", unit.String())

	p := tea.NewProgram(ui.NewModel(unit), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running application: %w", err)
	}

	// The alternate screen is gone by now, so say goodbye on the normal one
	if m, ok := final.(ui.Model); ok && m.Done() {
		fmt.Println(ui.Farewell)
	}
	return nil
}

// Command pioemu loads a PIO program from an INI file, runs it for a fixed
// number of cycles (or until a named field reaches a target value), and
// dumps registers, FIFOs and GPIO state. It stands in for the GUI's role at
// the tick()/field-access boundary the core package exposes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pioemu/piosim/config"
	"github.com/pioemu/piosim/core"
	"github.com/pioemu/piosim/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a [settings]+[program] INI file")
	cycles := flag.Int("cycles", 0, "number of cycles to tick (ignored if -until is set)")
	until := flag.String("until", "", "\"name=target\" field to run until, or empty")
	setFlag := flag.String("set", "", "shell-quoted list of name=value assignments applied before running")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "pioemu: -config is required")
		os.Exit(2)
	}

	loaded, err := config.LoadINI(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pioemu:", err)
		os.Exit(1)
	}

	lg := logger.NewRingLogger(256)
	sm := core.NewStateMachine(loaded.Settings, loaded.Program, core.NewIRQBank(), lg, 0)
	sm.SetVar("pc", uint32(loaded.InitialPC))

	if err := applyAssignments(sm, *setFlag); err != nil {
		fmt.Fprintln(os.Stderr, "pioemu:", err)
		os.Exit(1)
	}

	if *until != "" {
		name, target, err := parseAssignment(*until)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pioemu: -until:", err)
			os.Exit(1)
		}
		reached := sm.RunUntil(name, target, maxUntilCycles)
		if !reached {
			fmt.Fprintf(os.Stderr, "pioemu: %s never reached %d within %d cycles\n", name, target, maxUntilCycles)
		}
	} else {
		for i := 0; i < *cycles; i++ {
			sm.Tick()
		}
	}

	dumpState(sm)
	lg.Write(os.Stderr)
}

const maxUntilCycles = 1_000_000

// applyAssignments tokenizes a shell-quoted "name=value name2=value2" string
// and writes each through the reflection façade.
func applyAssignments(sm *core.StateMachine, raw string) error {
	if raw == "" {
		return nil
	}
	tokens, err := shlex.Split(raw)
	if err != nil {
		return fmt.Errorf("-set: %w", err)
	}
	for _, tok := range tokens {
		name, value, err := parseAssignment(tok)
		if err != nil {
			return err
		}
		sm.SetVar(name, value)
	}
	return nil
}

func parseAssignment(tok string) (name string, value uint32, err error) {
	parts := strings.SplitN(tok, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("expected name=value, got %q", tok)
	}
	v, err := strconv.ParseUint(parts[1], 0, 32)
	if err != nil {
		return "", 0, fmt.Errorf("bad value in %q: %w", tok, err)
	}
	return parts[0], uint32(v), nil
}

func dumpState(sm *core.StateMachine) {
	fmt.Printf("pc=%d x=%d y=%d isr=%#x osr=%#x clock=%d\n",
		sm.GetVar("pc"), sm.GetVar("x"), sm.GetVar("y"),
		sm.GetVar("isr"), sm.GetVar("osr"), sm.GetVar("clock"))
	fmt.Printf("tx_fifo_count=%d rx_fifo_count=%d\n",
		sm.GetVar("tx_fifo_count"), sm.GetVar("rx_fifo_count"))

	var gpio strings.Builder
	for i := 31; i >= 0; i-- {
		fmt.Fprintf(&gpio, "%d", sm.GetVar(fmt.Sprintf("gpio%d", i)))
	}
	fmt.Printf("gpio=%s\n", gpio.String())
}

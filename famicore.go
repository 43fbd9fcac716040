// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/jetsetilly/famicore/disassembly"
	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/preferences"
	"github.com/jetsetilly/famicore/loader"
	"github.com/jetsetilly/famicore/logger"
	"github.com/jetsetilly/famicore/modalflag"
	"github.com/jetsetilly/famicore/monitor"
	"github.com/jetsetilly/famicore/paths"
	"github.com/jetsetilly/famicore/prefs"
	"github.com/jetsetilly/famicore/scripting"
	"github.com/jetsetilly/famicore/statsview"
	"github.com/jetsetilly/famicore/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch is separate from main() so that it can be tested.
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "MONITOR", "SCRIPT", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "MONITOR":
		err = mon(md, input, output)
	case "SCRIPT":
		err = script(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

// setEcho sets the debugging log echo. log entries are colorized if output
// is a terminal.
func setEcho(output io.Writer, echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output), true)
		return
	}
	logger.SetEcho(output, true)
}

// loaderFlags are the flags common to every mode that loads an image.
type loaderFlags struct {
	origin *string
	entry  *string
	log    *bool
}

func addLoaderFlags(md *modalflag.Modes) loaderFlags {
	return loaderFlags{
		origin: md.AddString("origin", "", "load `address` for raw binaries (default from preferences)"),
		entry:  md.AddString("entry", "", "entry point `address` (default RESET vector or origin)"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// commandLinePrefs builds a prefs string from the flags that have been set on
// the command line. the string is pushed onto the prefs command line stack so
// that the flags take precedence over the values in the preferences file.
func commandLinePrefs(md *modalflag.Modes, values map[string]string) string {
	s := strings.Builder{}
	md.Visit(func(flag string) {
		if v, ok := values[flag]; ok {
			key := flag
			if k, ok := prefKeys[flag]; ok {
				key = k
			}
			s.WriteString(fmt.Sprintf("famicore.%s::%s; ", key, v))
		}
	})
	return s.String()
}

// flags with names that differ from the preference key
var prefKeys = map[string]string{
	"max": "maxinstructions",
}

// newConsole creates the console with preferences. the prefs string is pushed
// onto the command line stack for the duration of the preferences creation.
func newConsole(cmdline string) (*hardware.Console, error) {
	pth, err := paths.ResourcePath("", preferences.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(cmdline)
	p, err := preferences.NewPreferences(pth)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "famicore", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	return hardware.NewConsole(p), nil
}

// attach the named image to the console using the origin and entry
// preferences.
func attach(con *hardware.Console, filename string) (*loader.Loader, error) {
	ld := loader.NewLoader(filename, uint16(con.Prefs.Origin.Get().(int)))
	ld.Entry = con.Prefs.Entry.Get().(int)
	if err := con.AttachImage(&ld); err != nil {
		return nil, err
	}
	return &ld, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lf := addLoaderFlags(md)
	maxInstructions := md.AddString("max", "", "maximum number of instructions to execute (0 for no limit)")
	trace := md.AddBool("trace", false, "print each instruction as it is executed")
	stopBRK := md.AddBool("stopbrk", true, "stop when the next instruction is BRK")
	prefsStr := md.AddString("prefs", "", "preferences string (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(output, *lf.log)

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program image required for %s mode", md)
	}

	cmdline := *prefsStr + ";" + commandLinePrefs(md, map[string]string{
		"origin":  *lf.origin,
		"entry":   *lf.entry,
		"max":     *maxInstructions,
		"trace":   fmt.Sprintf("%v", *trace),
		"stopbrk": fmt.Sprintf("%v", *stopBRK),
	})

	con, err := newConsole(cmdline)
	if err != nil {
		return err
	}

	if _, err := attach(con, md.GetArg(0)); err != nil {
		return err
	}

	if con.Prefs.Trace.Get().(bool) {
		con.Trace = output
	}

	if *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	// ctrl-c ends the run at the end of the current instruction
	var interrupted atomic.Bool
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		for range intChan {
			interrupted.Store(true)
		}
	}()

	reason, err := con.Run(func() (hardware.State, error) {
		if interrupted.Load() {
			return hardware.Ending, nil
		}
		return hardware.Running, nil
	})
	if err != nil {
		fmt.Fprintf(output, "%s\n", con.CPU)
		return err
	}

	fmt.Fprintf(output, "%s after %d instructions\n", reason, con.Count)
	fmt.Fprintf(output, "%s\n", con.CPU)

	return nil
}

func mon(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	lf := addLoaderFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(output, *lf.log)

	con, err := newConsole(commandLinePrefs(md, map[string]string{
		"origin": *lf.origin,
		"entry":  *lf.entry,
	}))
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if _, err := attach(con, md.GetArg(0)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return monitor.NewMonitor(con, output).Run(input)
}

func script(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lf := addLoaderFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(output, *lf.log)

	con, err := newConsole(commandLinePrefs(md, map[string]string{
		"origin": *lf.origin,
		"entry":  *lf.entry,
	}))
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script required for %s mode", md)
	case 1:
	case 2:
		if _, err := attach(con, md.GetArg(1)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	scr := scripting.NewScript(con, output)
	defer scr.Close()

	return scr.RunFile(md.GetArg(0))
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lf := addLoaderFlags(md)
	all := md.AddBool("all", false, "show every address, not only those reachable from the entry point")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(output, *lf.log)

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program image required for %s mode", md)
	}

	con, err := newConsole(commandLinePrefs(md, map[string]string{
		"origin": *lf.origin,
		"entry":  *lf.entry,
	}))
	if err != nil {
		return err
	}

	ld, err := attach(con, md.GetArg(0))
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(con.CPU, ld.Origin, ld.Length)
	if err != nil {
		return err
	}
	dsm.Bless(con.CPU.PC.Address())

	return dsm.Write(output, !*all)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintln(output, version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}
	return nil
}

/*
  main.go
  Description: mtlrender command-line tool
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:40:12 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

// mtlrender renders a Metadata Template Language template against one or
// more files, either from their own filesystem metadata or from a JSON
// fixture, and prints the result(s) to standard output.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"

	clitable "github.com/clinaresl/table"

	"github.com/clinaresl/mtl/fstools"
	"github.com/clinaresl/mtl/mtl"
	"github.com/clinaresl/mtl/providers"
)

const VERSION string = "0.1.0"
const AUTHOR string = "Carlos Linares Lopez"
const EMAIL string = "carlos.linares@uc3m.es"

const (
	EXIT_SUCCESS = 0
	EXIT_FAILURE = 1
)

// Options
var (
	template   string // the MTL template, given directly on the command line
	paths      []string
	fixture    string // path to a JSON file of field -> value(s) fixtures
	list       bool   // show a table of path vs. rendered results
	watchFlag  bool   // re-render on every change under the given paths
	colorMode  string
	verbose    bool
	version    bool
)

func init() {
	flag.StringVar(&template, "template", "", "the MTL template to render")
	flag.StringVar(&fixture, "fixture", "", "JSON file of field names to values, used instead of file metadata")
	flag.BoolVar(&list, "list", false, "show a table summarizing every rendered branch")
	flag.BoolVar(&watchFlag, "watch", false, "re-render every time one of the given paths changes")
	flag.StringVar(&colorMode, "color", "auto", "colorize output: auto, always or never")
	flag.BoolVar(&verbose, "verbose", false, "log each render at debug level")
	flag.BoolVar(&version, "version", false, "show version info and exit")
}

func showVersion() {
	fmt.Printf("\n %v", os.Args[0])
	fmt.Printf("\n Version: %v\n", VERSION)
	fmt.Printf("\n %v", AUTHOR)
	fmt.Printf("\n %v\n\n", EMAIL)
	os.Exit(EXIT_SUCCESS)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func setupColor() {
	switch colorMode {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		// leave fatih/color's own go-isatty based detection in charge
	}
}

func main() {
	flag.Parse()
	paths = flag.Args()

	if version {
		showVersion()
	}
	setupColor()
	logger := newLogger()

	if template == "" {
		logger.Error("a template must be given with --template")
		os.Exit(EXIT_FAILURE)
	}

	tpl, err := mtl.Parse(template)
	if err != nil {
		logger.Error("failed to parse template", "error", err)
		os.Exit(EXIT_FAILURE)
	}

	reg := mtl.NewRegistry()
	providers.RegisterDefaults(reg)

	if fixture != "" {
		if err := renderFixture(tpl, reg, fixture, logger); err != nil {
			logger.Error("render failed", "error", err)
			os.Exit(EXIT_FAILURE)
		}
		return
	}

	if len(paths) == 0 {
		logger.Error("at least one path must be given, or --fixture used instead")
		os.Exit(EXIT_FAILURE)
	}

	if watchFlag {
		if err := watchAndRender(tpl, reg, paths, logger); err != nil {
			logger.Error("watch failed", "error", err)
			os.Exit(EXIT_FAILURE)
		}
		return
	}

	if err := renderPaths(tpl, reg, paths, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(EXIT_FAILURE)
	}
}

// renderPaths renders tpl once for each of paths and prints the result,
// either as a plain list or, with --list, as a table built with
// github.com/clinaresl/table.
func renderPaths(tpl *mtl.Template, reg *mtl.Registry, paths []string, logger *slog.Logger) error {
	if list {
		return printTable(tpl, reg, paths)
	}

	errorIcon := color.New(color.FgRed, color.Bold).SprintFunc()
	successIcon := color.New(color.FgGreen, color.Bold).SprintFunc()

	for _, p := range paths {
		clean := fstools.ProcessDirectory(p)
		results, err := mtl.Render(tpl, reg, mtl.FileContext{Path: clean})
		if err != nil {
			fmt.Printf("%s %s: %v\n", errorIcon("x"), clean, err)
			logger.Debug("render error", "path", clean, "error", err)
			continue
		}
		for _, r := range results {
			fmt.Printf("%s %s\n", successIcon(">"), r)
		}
	}
	return nil
}

// printTable renders tpl for every path and shows the first branch of each
// result alongside the source path, in an ASCII table.
func printTable(tpl *mtl.Template, reg *mtl.Registry, paths []string) error {
	tab, err := clitable.NewTable(" l : l")
	if err != nil {
		return fmt.Errorf("mtlrender: cannot build table: %w", err)
	}

	tab.AddThickRule()
	tab.AddRow("path", "rendered")
	tab.AddDoubleRule()

	for _, p := range paths {
		clean := fstools.ProcessDirectory(p)
		results, err := mtl.Render(tpl, reg, mtl.FileContext{Path: clean})
		if err != nil {
			tab.AddRow(clean, fmt.Sprintf("error: %v", err))
			continue
		}
		tab.AddRow(clean, joinOrFirst(results))
	}
	tab.AddThickRule()

	fmt.Println(tab)
	return nil
}

func joinOrFirst(results []string) string {
	if len(results) == 0 {
		return ""
	}
	if len(results) == 1 {
		return results[0]
	}
	return fmt.Sprintf("%s (+%d more)", results[0], len(results)-1)
}

// renderFixture renders tpl once against a static, file-free JSON fixture of
// field name to string-list values, useful for testing templates without
// real files on disk.
func renderFixture(tpl *mtl.Template, reg *mtl.Registry, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mtlrender: cannot read fixture %q: %w", path, err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("mtlrender: cannot parse fixture %q: %w", path, err)
	}

	values := make(map[string]mtl.MetaValue, len(raw))
	for k, v := range raw {
		values[k] = mtl.List(v...)
	}
	reg.Register(providers.NewStaticProvider(values), mtl.Soft)

	results, err := mtl.Render(tpl, reg, mtl.FileContext{Path: path})
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}
	logger.Debug("rendered fixture", "path", path, "branches", len(results))
	return nil
}

// watchAndRender renders paths once, then re-renders them every time
// fsnotify reports a write or a create in the parent directory of one of the
// given paths.
func watchAndRender(tpl *mtl.Template, reg *mtl.Registry, paths []string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("mtlrender: cannot create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close file watcher", "error", closeErr)
		}
	}()

	watched := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(fstools.ProcessDirectory(p))
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("mtlrender: cannot watch %q: %w", dir, err)
		}
		watched[dir] = true
	}

	if err := renderPaths(tpl, reg, paths, logger); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info("change detected, re-rendering", "path", event.Name)
			if err := renderPaths(tpl, reg, paths, logger); err != nil {
				logger.Error("render failed", "error", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", werr)
		}
	}
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kballard/go-shellquote"

	. "github.com/JaMo42/prepeek/common"
	"github.com/JaMo42/prepeek/parser"
	"github.com/JaMo42/prepeek/tui"
	"github.com/JaMo42/prepeek/util"
)

const (
	appName    = "prepeek"
	appVersion = "0.1.0"
)

type Options struct {
	depth      int
	globs      []string
	words      bool
	view       bool
	dumpStyles bool
}

func parseArgs() (Options, []string) {
	InvocationName = os.Args[0]
	globsString := ""
	showVersion := false
	var options Options
	flag.IntVar(
		&options.depth, "depth", -1,
		"lookahead depth, overrides the config",
	)
	flag.StringVar(
		&globsString, "globs", "",
		"comma separated list of globs for file names in directories",
	)
	flag.BoolVar(
		&showVersion, "version", false,
		"show version information",
	)
	flag.BoolVar(
		&options.words, "words", false,
		"list the comment words instead of the tokens",
	)
	flag.BoolVar(
		&options.view, "view", false,
		"step through the tokens interactively",
	)
	flag.BoolVar(
		&options.dumpStyles, "dump-styles", false,
		"Dump all configured styles to standard output.",
	)
	flag.Parse()
	if showVersion {
		fmt.Printf("%s %s\n", appName, appVersion)
		os.Exit(0)
	}
	if err := options.check(); err != nil {
		Fatal("%s", err)
	}
	if len(globsString) != 0 {
		options.globs = util.Filter(
			strings.Split(globsString, ","),
			func(pattern string) bool {
				_, err := filepath.Match(pattern, "")
				if err != nil {
					Warn("discarding invalid glob: %s", pattern)
				}
				return err == nil
			},
		)
	}
	return options, flag.Args()
}

// check rejects flag combinations that select more than one mode.
func (self *Options) check() error {
	if self.words && self.view {
		return fmt.Errorf("-words and -view cannot be used together")
	}
	return nil
}

// discover walks a directory tree, adding all files matching the filter to the
// files list. filter is the same as in getFiles.
func discover(files []string, dir string, filter func(string, bool) bool) []string {
	dirContent, _ := os.ReadDir(dir)
	for _, file := range dirContent {
		name := filepath.Join(dir, file.Name())
		if file.IsDir() {
			files = discover(files, name, filter)
		} else if filter(name, false) {
			files = append(files, name)
		}
	}
	return files
}

// getFiles gets the list of files based on the arguments. If an argument
// specifies a file it is added to the list if it matches the filter.
// If it specified a directory it is recursively traversed, adding all files
// matching the filter. The filter receives the name if the file and whether it
// was an argument or found during directory discovery.
func getFiles(args []string, filter func(string, bool) bool) []string {
	files := []string{}
	if len(args) == 0 {
		return discover(files, ".", filter)
	}
	for _, arg := range args {
		stat, err := os.Stat(arg)
		if err != nil {
			Warn("%s", err)
			continue
		}
		if stat.IsDir() {
			files = discover(files, arg, filter)
		} else if filter(arg, true) {
			files = append(files, arg)
		}
	}
	return files
}

// fileFilter returns a filter for use in the getFiles function. The returned
// filter checks if a comment style is defined for the files extension and
// whether it matches the glob filter option, if provided.
func fileFilter(cfg *Config, options *Options) func(filename string, direct bool) bool {
	extensionFilter := func(filename string, direct bool) bool {
		_, ok := cfg.GetStyle(fileExtension(filename))
		if !ok && direct {
			Warn("skipping %s: no comment style defined for extension", filename)
		}
		return ok
	}
	if len(options.globs) == 0 {
		return extensionFilter
	}
	return func(filename string, direct bool) bool {
		if !extensionFilter(filename, direct) {
			return false
		}
		for _, glob := range options.globs {
			if match, _ := filepath.Match(glob, filepath.Base(filename)); match {
				return true
			}
		}
		return false
	}
}

func fileExtension(filename string) string {
	return *util.Back(strings.Split(filepath.Base(filename), "."))
}

// readCommandLine builds the read command for a file.
func readCommandLine(command, filename string) ([]string, error) {
	commandLine, err := shellquote.Split(strings.ReplaceAll(command, "%FILE%", filename))
	if err != nil {
		return nil, err
	}
	if len(commandLine) == 0 {
		return nil, fmt.Errorf("empty read command")
	}
	return commandLine, nil
}

// readSource returns the contents of a file, passed through the read command
// if one is configured. If the command fails the raw contents are used.
func readSource(filename string, cfg *Config) (string, error) {
	if len(cfg.General.ReadCommand) != 0 {
		commandLine, err := readCommandLine(cfg.General.ReadCommand, filename)
		if err != nil {
			Fatal("syntax error in read command: %s", err)
		}
		output, err := exec.Command(commandLine[0], commandLine[1:]...).Output()
		if err == nil {
			return string(output), nil
		}
		Warn("read command failed for %s: %s", filename, err)
	}
	content, err := os.ReadFile(filename)
	return string(content), err
}

// configPath returns the path and directory of the config file.
func configPath() (string, string, bool) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if len(configHome) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", false
		}
		configHome = filepath.Join(home, ".config")
	}
	locations := []struct{ dir, file string }{
		{
			configHome,
			filepath.Join(configHome, appName+".toml"),
		},
		{
			filepath.Join(configHome, appName),
			filepath.Join(configHome, appName, "config.toml"),
		},
	}
	for _, location := range locations {
		stat, err := os.Stat(location.file)
		if err == nil && !stat.IsDir() {
			return location.file, location.dir, true
		}
	}
	return "", "", false
}

// collectIgnoreLists creates the ignore list from all ignore list files,
// looked up in the working directory and the config directory.
func collectIgnoreLists(configDir Optional[string], cfg *Config) IgnoreList {
	dirs := []string{}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	configDir.Then(func(path string) {
		dirs = append(dirs, path)
	})
	list := NewIgnoreList(cfg.General.IgnoreCase)
	for _, filename := range cfg.General.IgnoreLists {
		for _, dir := range dirs {
			file, err := os.Open(filepath.Join(dir, filename))
			if err != nil {
				continue
			}
			if err := list.Read(file); err != nil {
				Warn("%s: %s", file.Name(), err)
			}
			file.Close()
		}
	}
	return list
}

func compileFilters(cfg *Config) []*regexp.Regexp {
	return util.Map(cfg.General.Filters, func(str string) *regexp.Regexp {
		re, err := regexp.Compile(str)
		if err != nil {
			Fatal("invalid filter: %s", err)
		}
		return re
	})
}

func viewTokens(scr tcell.Screen, filename string, tokens *Peekable[parser.Token], cfg *Config) {
	format := func(tok *parser.Token) tui.Item {
		style := tcell.StyleDefault
		if tok.Kind() == parser.TokenKind.Style {
			style = tui.Ansi2Style(tok.Text())
		}
		return tui.Item{Text: tok.String(), Style: style}
	}
	box := tui.GetBoxStyle(cfg.General.BoxStyle)
	tui.NewStepper(scr, tokens, filename, format, box).Run()
}

type sourceFile struct {
	name string
	text string
}

// loadSources reads all files, skipping the ones that cannot be read. This
// happens before the screen is opened so warnings end up on the terminal.
func loadSources(files []string, cfg *Config) []sourceFile {
	sources := []sourceFile{}
	for _, filename := range files {
		text, err := readSource(filename, cfg)
		if err != nil {
			Warn("%s", err)
			continue
		}
		sources = append(sources, sourceFile{filename, text})
	}
	return sources
}

func run(options *Options, cfg *Config, configDir Optional[string], files []string, out io.Writer) {
	sources := loadSources(files, cfg)
	switch {
	case options.words:
		extractOptions := parser.Options{
			Depth:   cfg.General.Depth,
			Filters: compileFilters(cfg),
		}
		ignoreList := collectIgnoreLists(configDir, cfg)
		extractOptions.Ignore = &ignoreList
		words := WordCounts{}
		for _, source := range sources {
			style, _ := cfg.GetStyle(fileExtension(source.name))
			words.Add(parser.Extract(source.text, style, extractOptions))
		}
		if err := words.Write(out); err != nil {
			Fatal("%s", err)
		}
	case options.view:
		scr := tui.NewScreen()
		defer tui.Quit(scr)
		for _, source := range sources {
			style, _ := cfg.GetStyle(fileExtension(source.name))
			tokens := parser.NewTokenStream(source.text, style, cfg.General.Depth)
			viewTokens(scr, source.name, &tokens, cfg)
		}
	default:
		for _, source := range sources {
			style, _ := cfg.GetStyle(fileExtension(source.name))
			tokens := parser.NewTokenStream(source.text, style, cfg.General.Depth)
			fmt.Fprintf(out, "==> %s <==\n", source.name)
			if err := writeTokens(out, &tokens); err != nil {
				Fatal("%s", err)
			}
		}
	}
}

func main() {
	log.SetFlags(0)
	options, args := parseArgs()
	configFile, dir, haveConfig := configPath()
	var cfg Config
	configDir := None[string]()
	if haveConfig {
		cfg = LoadConfig(configFile)
		configDir = Some(dir)
	} else {
		cfg = DefaultConfig()
	}
	MergeBuiltinStyles(&cfg)
	if options.depth >= 0 {
		cfg.General.Depth = options.depth
	}
	if options.dumpStyles {
		dumpStyles(os.Stdout, &cfg)
		return
	}
	files := getFiles(args, fileFilter(&cfg, &options))
	if len(files) == 0 {
		fmt.Println("No files")
		return
	}
	run(&options, &cfg, configDir, files, os.Stdout)
}

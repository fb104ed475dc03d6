// Copyright
// SPDX-License-Identifier: MIT
// codetool: edit, render and ingest language-tagged code blocks
package main

import (
    "flag"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"
    "sync"
    "time"

    "github.com/atotto/clipboard"

    "codetool/internal/block"
    cfg "codetool/internal/config"
    "codetool/internal/highlight"
    "codetool/internal/lang"
    "codetool/internal/paste"
    appTUI "codetool/internal/tui"
    "codetool/internal/tui/util"
    "codetool/internal/tui/views/languages"
    "codetool/internal/tui/widgets/codeblock"
)

const Version = "0.1.0"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    var err error
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("codetool", Version)
        return
    case "edit":
        err = cmdEdit()
    case "render":
        err = cmdRender()
    case "paste":
        err = cmdPaste()
    case "languages":
        cmdLanguages()
    default:
        usage()
    }
    if err != nil {
        fmt.Fprintln(os.Stderr, "codetool:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Print(`codetool ` + Version + `
A code block editor: one language-tagged sample per JSON file, edited raw and read highlighted.
USAGE
  codetool <command> [options] FILE
COMMANDS
  edit         Open the block editor on FILE (created on first save)
  render       Print the highlighted block (terminal colors or --html)
  paste        Replace the block with the text of a pasted <pre> element
  languages    List the language ids a block can carry
  help         Show help (try: codetool help edit)
  version      Print version
NOTES
  • Blocks are stored as {"id", "type": "code", "data": {"code", "selectedLanguage"}}; bare data is accepted on load.
  • Settings come from codetool.toml (or .yaml/.json) in . or ~/.config/codetool, then CODETOOL_* env vars.
  • The editor owns the terminal; use -v or -vv with --log-file to record logs.
`, "\n")
}

func helpTopic(name string) {
    switch name {
    case "edit":
        fmt.Print(`USAGE
  codetool edit FILE [--read-only] [--lang ID] [--config PATH] [--no-color] [-v | -vv] [--log-file PATH]
DESCRIPTION
  Opens FILE in the block editor. Tab / Shift+Tab indent and outdent the caret line,
  Ctrl+T switches between the raw and highlighted surfaces, Ctrl+L picks the language,
  Ctrl+V pastes (a <pre> element replaces the block), Ctrl+S saves, F1 shows all keys.
OPTIONS
  --read-only            Show the block highlighted only; no edits, no mode switch
  --lang ID              Set the language before editing (e.g. language-go)
  --config PATH          Config file (default: codetool.* in . or ~/.config/codetool)
  --no-color             Disable colors (also honors NO_COLOR)
  -v                     Verbose INFO logs
  -vv                    DEBUG logs
  --log-file PATH        Append logs to file (created if missing)
`, "\n")
    case "render":
        fmt.Print(`USAGE
  codetool render FILE [--html] [--lang ID] [--config PATH] [--no-color]
DESCRIPTION
  Prints the block's read surface: ANSI-highlighted code with line numbers, or with --html
  the markup form <pre><code class="language-<name> line-numbers">...</code></pre>.
`, "\n")
    case "paste":
        fmt.Print(`USAGE
  codetool paste FILE [--clipboard] [-v | -vv] [--log-file PATH]
DESCRIPTION
  Reads HTML from stdin (or the clipboard) and, if it holds a <pre> element, replaces the
  block's code with its text. The language goes back to the default.
`, "\n")
    case "languages":
        fmt.Print(`USAGE
  codetool languages
DESCRIPTION
  Lists language ids in picker order. Unknown ids in a block file load as the default.
`, "\n")
    default:
        usage()
    }
}

/* ---------- commands ---------- */

type commonFlags struct {
    config  *string
    noColor *bool
    verbose *bool
    debug   *bool
    logPath *string
}

func addCommon(fs *flag.FlagSet) commonFlags {
    return commonFlags{
        config:  fs.String("config", "", "Config file path"),
        noColor: fs.Bool("no-color", false, "Disable colors"),
        verbose: fs.Bool("v", false, "Verbose logs (INFO)"),
        debug:   fs.Bool("vv", false, "Debug logs (DEBUG)"),
        logPath: fs.String("log-file", "", "Append logs to file (created if missing)"),
    }
}

func (c commonFlags) verbosity() int {
    if *c.debug {
        return 2
    }
    if *c.verbose {
        return 1
    }
    return 0
}

func cmdEdit() error {
    fs := flag.NewFlagSet("edit", flag.ExitOnError)
    fs.Usage = func() { helpTopic("edit") }
    readOnly := fs.Bool("read-only", false, "Open the block read-only")
    langID := fs.String("lang", "", "Language id to set before editing")
    common := addCommon(fs)
    path, err := parseWithFile(fs, os.Args[2:])
    if err != nil {
        return err
    }

    lf, err := openLogFile(*common.logPath)
    if err != nil {
        fmt.Println("Could not open log file:", err)
    }
    defer func() {
        if lf != nil {
            _ = lf.Close()
        }
    }()
    // The TUI owns the terminal, so logs only go to the file.
    info, debug := newLoggers(common.verbosity(), lf, nil)

    conf, err := cfg.Load(*common.config)
    if err != nil {
        return err
    }
    if used := cfg.Used(*common.config); used != "" {
        info("config: %s", used)
    }

    env, created, err := block.Load(path)
    if err != nil {
        return err
    }
    if created {
        info("new block %s (%s)", env.ID, path)
    }
    if *langID != "" {
        if err := applyLanguage(&env.Data, *langID); err != nil {
            return err
        }
    }

    noColor := util.NoColor(*common.noColor || conf.NoColor)
    res, err := appTUI.Run(env.Data, appTUI.Options{
        Path:        path,
        ReadOnly:    *readOnly,
        Config:      codeblock.Config{Placeholder: conf.Placeholder},
        API:         codeblock.HostAPI{I18n: codeblock.Dict(conf.Dict()), Styles: codeblock.DefaultStyles},
        Highlighter: newHighlighter(conf, noColor),
        Width:       conf.Width,
        Height:      conf.Height,
        NoColor:     noColor,
        Logf:        debug,
        Save: func(d block.Data) error {
            env.Data = d
            if err := block.Save(path, env); err != nil {
                return err
            }
            info("saved %s (%d bytes, %s)", path, len(d.Code), d.SelectedLanguage)
            return nil
        },
    })
    if err != nil {
        return err
    }
    if res.Data != env.Data {
        fmt.Println("Quit with unsaved changes:", path)
    } else if res.Saved {
        fmt.Println("Saved", path)
    }
    return nil
}

func cmdRender() error {
    fs := flag.NewFlagSet("render", flag.ExitOnError)
    fs.Usage = func() { helpTopic("render") }
    asHTML := fs.Bool("html", false, "Emit HTML markup instead of ANSI colors")
    langID := fs.String("lang", "", "Render with this language instead of the saved one")
    common := addCommon(fs)
    path, err := parseWithFile(fs, os.Args[2:])
    if err != nil {
        return err
    }
    conf, err := cfg.Load(*common.config)
    if err != nil {
        return err
    }
    env, created, err := block.Load(path)
    if err != nil {
        return err
    }
    if created {
        return fmt.Errorf("render %s: %w", path, os.ErrNotExist)
    }
    if *langID != "" {
        if err := applyLanguage(&env.Data, *langID); err != nil {
            return err
        }
    }

    if *asHTML {
        fmt.Println(codeblock.MarkupHTML(env.Data))
        return nil
    }
    noColor := util.NoColor(*common.noColor || conf.NoColor)
    w := codeblock.New(env.Data, codeblock.Config{}, codeblock.HostAPI{}, true,
        codeblock.WithHighlighter(newHighlighter(conf, noColor)),
        codeblock.WithNoColor(noColor))
    fmt.Println(numbered(w.Render().Read.Content))
    return nil
}

func cmdPaste() error {
    fs := flag.NewFlagSet("paste", flag.ExitOnError)
    fs.Usage = func() { helpTopic("paste") }
    fromClipboard := fs.Bool("clipboard", false, "Read from the clipboard instead of stdin")
    common := addCommon(fs)
    path, err := parseWithFile(fs, os.Args[2:])
    if err != nil {
        return err
    }
    lf, err := openLogFile(*common.logPath)
    if err != nil {
        fmt.Println("Could not open log file:", err)
    }
    defer func() {
        if lf != nil {
            _ = lf.Close()
        }
    }()
    info, debug := newLoggers(common.verbosity(), lf, os.Stderr)

    var src string
    if *fromClipboard {
        src, err = clipboard.ReadAll()
        if err != nil {
            return fmt.Errorf("read clipboard: %w", err)
        }
    } else {
        b, err := io.ReadAll(os.Stdin)
        if err != nil {
            return fmt.Errorf("read stdin: %w", err)
        }
        src = string(b)
    }

    ev, ok := paste.Match(src, codeblock.PasteConfig)
    if !ok {
        return fmt.Errorf("paste: no <%s> element in input", strings.ToLower(strings.Join(codeblock.PasteConfig.Tags, ">, <")))
    }
    env, _, err := block.Load(path)
    if err != nil {
        return err
    }
    w := codeblock.New(env.Data, codeblock.Config{}, codeblock.HostAPI{}, false,
        codeblock.WithHighlighter(highlight.Plain),
        codeblock.WithLogger(debug))
    w.OnPaste(ev)
    env.Data = w.Data()
    if err := block.Save(path, env); err != nil {
        return err
    }
    info("pasted <%s> into %s", strings.ToLower(ev.Tag), path)
    fmt.Printf("Pasted %d characters into %s\n", len([]rune(env.Data.Code)), path)
    return nil
}

func cmdLanguages() {
    for _, line := range languages.RenderOptions() {
        fmt.Println(line)
    }
}

/* ---------- helpers ---------- */

// parseWithFile parses flags and returns the single FILE argument. Flags may
// come before or after it.
func parseWithFile(fs *flag.FlagSet, args []string) (string, error) {
    var file string
    for {
        if err := fs.Parse(args); err != nil {
            return "", err
        }
        if fs.NArg() == 0 {
            break
        }
        if file != "" {
            return "", fmt.Errorf("%s: expected one FILE, got %q and %q", fs.Name(), file, fs.Arg(0))
        }
        file = fs.Arg(0)
        args = fs.Args()[1:]
    }
    if file == "" {
        return "", fmt.Errorf("%s: missing FILE (see: codetool help %s)", fs.Name(), fs.Name())
    }
    return file, nil
}

func applyLanguage(d *block.Data, id string) error {
    if !strings.HasPrefix(id, "language-") {
        id = "language-" + id
    }
    l, ok := lang.Lookup(id)
    if !ok {
        return fmt.Errorf("unknown language %q (did you mean %s? see: codetool languages)", id, lang.Suggest(id))
    }
    d.SelectedLanguage = l.ID()
    return nil
}

func newHighlighter(c cfg.Config, noColor bool) highlight.Highlighter {
    if noColor {
        return highlight.Plain
    }
    return highlight.NewTerminal(c.Theme, c.Formatter)
}

func numbered(content string) string {
    lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
    width := len(fmt.Sprint(len(lines)))
    for i, l := range lines {
        lines[i] = fmt.Sprintf("%*d │ %s", width, i+1, l)
    }
    return strings.Join(lines, "\n")
}

var logFileMu sync.Mutex

func openLogFile(path string) (*os.File, error) {
    if path == "" {
        return nil, nil
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        _ = os.MkdirAll(dir, 0o755)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
    if err != nil {
        return nil, err
    }
    _, _ = fmt.Fprintf(f, "=== codetool %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
    return f, nil
}

// newLoggers returns INFO and DEBUG loggers gated by verbosity. Lines go to
// the log file and, when console is set, to the console as well.
func newLoggers(verbosity int, lf *os.File, console io.Writer) (info, debug func(string, ...any)) {
    logAt := func(level int, tag string) func(string, ...any) {
        if verbosity < level || (lf == nil && console == nil) {
            return func(string, ...any) {}
        }
        return func(format string, args ...any) {
            line := fmt.Sprintf("[%s] %s %s\n", tag, time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
            logFileMu.Lock()
            defer logFileMu.Unlock()
            if lf != nil {
                _, _ = lf.WriteString(line)
            }
            if console != nil {
                _, _ = io.WriteString(console, line)
            }
        }
    }
    return logAt(1, "INFO"), logAt(2, "DEBUG")
}

// Command notation-converter converts arithmetic expressions between infix,
// prefix and postfix notation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/alttpo/notation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	from, to string
	help     bool
	guide    bool
	verbose  bool
	tree     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printHelp(stdout)
		return 0
	}

	var o options
	fs := flag.NewFlagSet("notation-converter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.from, "from", "", "input format")
	fs.StringVar(&o.to, "to", "", "output format")
	fs.BoolVar(&o.help, "h", false, "show help")
	fs.BoolVar(&o.help, "help", false, "show help")
	fs.BoolVar(&o.guide, "guide", false, "show detailed guide")
	fs.BoolVar(&o.verbose, "verbose", false, "log conversion stages")
	fs.BoolVar(&o.tree, "tree", false, "dump the expression tree")

	flagArgs, trailing := splitExpression(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Try 'notation-converter --help' for more information.\n")
		return 1
	}

	switch {
	case o.help:
		printHelp(stdout)
		return 0
	case o.guide:
		printGuide(stdout)
		return 0
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["from"] {
		fmt.Fprintln(stderr, "Error: Missing '--from' argument.")
		return 1
	}
	if !set["to"] {
		fmt.Fprintln(stderr, "Error: Missing '--to' argument.")
		return 1
	}
	from, ok := parseFormat(stderr, o.from)
	if !ok {
		return 1
	}
	to, ok := parseFormat(stderr, o.to)
	if !ok {
		return 1
	}

	positional := append(fs.Args(), trailing...)
	switch len(positional) {
	case 0:
		fmt.Fprintln(stderr, "Error: Missing expression.")
		return 1
	case 1:
	default:
		fmt.Fprintln(stderr, "Error: Multiple expressions detected.")
		fmt.Fprintln(stderr, "Hint: Use double quotes for expressions with spaces.")
		return 1
	}
	expr := positional[0]

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	c, err := notation.StrictConverter.WithLogger(logger).Convert(expr, from, to)
	if err != nil {
		report(stderr, err, from)
		return 1
	}

	if c.AlreadyInTargetForm {
		fmt.Fprintf(stdout, "Note: The expression is already in %s form.\n", to)
		return 0
	}

	if o.tree {
		fmt.Fprintln(stderr, c.Tree.SExpr())
		fmt.Fprintln(stderr, repr.String(c.Tree, repr.Indent("  ")))
	}
	fmt.Fprintln(stdout, c.Output)
	return 0
}

// splitExpression sets the last argument aside as the expression unless it
// is a defined flag or the value of one. Prefix expressions such as "- 1 2"
// start with a dash and would otherwise be read as flags.
func splitExpression(fs *flag.FlagSet, args []string) (flagArgs, trailing []string) {
	if len(args) == 0 {
		return args, nil
	}
	last := args[len(args)-1]
	if last == "--" || isDefinedFlag(fs, last) {
		return args, nil
	}
	if len(args) > 1 && takesValue(fs, args[len(args)-2]) {
		return args, nil
	}
	return args[:len(args)-1], []string{last}
}

func flagName(arg string) (name string, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, _ = strings.Cut(name, "=")
	return name, name != ""
}

func isDefinedFlag(fs *flag.FlagSet, arg string) bool {
	name, ok := flagName(arg)
	return ok && fs.Lookup(name) != nil
}

// takesValue reports whether arg is a string flag whose value is the next
// argument.
func takesValue(fs *flag.FlagSet, arg string) bool {
	name, ok := flagName(arg)
	if !ok || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	bf, isBool := f.Value.(interface{ IsBoolFlag() bool })
	return !isBool || !bf.IsBoolFlag()
}

func parseFormat(stderr io.Writer, s string) (notation.Format, bool) {
	f, err := notation.ParseFormat(s)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Invalid format specifier '%s'.\n", s)
		fmt.Fprintln(stderr, "Hint: Use 'infix', 'prefix', or 'postfix'.")
		return f, false
	}
	return f, true
}

// report writes a one-line diagnostic naming the fault.
func report(w io.Writer, err error, from notation.Format) {
	var wf *notation.WrongFormatError
	var ic *notation.InvalidCharError

	switch {
	case errors.As(err, &wf):
		fmt.Fprintf(w, "Error: Malformed expression. Detected %s format.\n", wf.Actual)
		fmt.Fprintf(w, "Hint: Expression must be in %s form.\n", from)
	case errors.As(err, &ic):
		fmt.Fprintf(w, "Error: Invalid character '%c' at position %d.\n", ic.Char, ic.Offset+1)
	case errors.Is(err, notation.ErrUnbalancedParentheses):
		fmt.Fprintln(w, "Error: Unbalanced parentheses.")
	case errors.Is(err, notation.ErrIllegalParentheses):
		fmt.Fprintln(w, "Error: Parentheses are not allowed in prefix or postfix notation.")
	case errors.Is(err, notation.ErrInsufficientOperand):
		fmt.Fprintln(w, "Error: Malformed expression. Missing operand.")
	case errors.Is(err, notation.ErrInsufficientOperator):
		fmt.Fprintln(w, "Error: Malformed expression. Missing operator.")
	default:
		fmt.Fprintf(w, "Error: %v.\n", err)
	}
}

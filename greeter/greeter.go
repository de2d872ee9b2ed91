// Package greeter implements a command that greets the person named on
// the command line.
package greeter

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Arg describes a required positional argument.
type Arg struct {
	Name string
	Help string
}

// Spec describes the command line: its name, help text, positional
// arguments and the exit status for usage errors.
type Spec struct {
	Use         string
	Description string
	Args        []Arg
	// MissingExitCode is returned when arguments are missing, surplus or
	// the flags are invalid.
	MissingExitCode int
}

// DefaultSpec is the greetings command.
func DefaultSpec() Spec {
	return Spec{
		Use:         "greetings",
		Description: "My first argument parser",
		Args: []Arg{
			{Name: "name", Help: "Name of person to greet."},
		},
		MissingExitCode: 2,
	}
}

// Request is a parsed invocation.
type Request struct {
	Name string
}

// Greeting formats the greeting for name verbatim.
func Greeting(name string) string {
	return fmt.Sprintf("Greetings, %s!", name)
}

var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// negativeNumbersAsPositional moves arguments such as "-5" behind a "--"
// so the flag parser treats them as positionals. The relative order of
// positionals is kept. Arguments already following "--" are left alone.
func negativeNumbersAsPositional(args []string) []string {
	var flags, positional []string
	found := false
	for i, a := range args {
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		switch {
		case negativeNumber.MatchString(a):
			found = true
			positional = append(positional, a)
		case strings.HasPrefix(a, "-") && a != "-":
			flags = append(flags, a)
		default:
			positional = append(positional, a)
		}
	}
	if !found {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// UsageError marks a command line that could not be parsed.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func (s Spec) use() string {
	var b strings.Builder
	b.WriteString(s.Use)
	for _, a := range s.Args {
		b.WriteString(" <" + a.Name + ">")
	}
	return b.String()
}

func (s Spec) long() string {
	if len(s.Args) == 0 {
		return s.Description
	}
	width := 0
	for _, a := range s.Args {
		width = max(width, len(a.Name))
	}

	var b strings.Builder
	b.WriteString(s.Description)
	b.WriteString("\n\nPositional arguments:\n")
	for _, a := range s.Args {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, a.Name, a.Help)
	}
	return b.String()
}

func (s Spec) validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < len(s.Args) {
		missing := make([]string, 0, len(s.Args)-len(args))
		for _, a := range s.Args[len(args):] {
			missing = append(missing, a.Name)
		}
		return &UsageError{Err: fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", "))}
	}
	if len(args) > len(s.Args) {
		return &UsageError{Err: fmt.Errorf("unrecognized arguments: %s", strings.Join(args[len(s.Args):], " "))}
	}
	return nil
}

// NewCommand builds the cobra command for spec. Errors are returned from
// Execute rather than printed; Run takes care of reporting them.
func NewCommand(spec Spec, logger *log.Logger) *cobra.Command {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cmd := &cobra.Command{
		Use:           spec.use(),
		Short:         spec.Description,
		Long:          spec.long(),
		Args:          spec.validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req Request
			if len(args) > 0 {
				req.Name = args[0]
			}
			logger.Debug("greeting", "name", req.Name)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Greeting(req.Name))
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	return cmd
}

// Run executes the command with args and returns the process exit code.
// The greeting goes to stdout; errors and usage go to stderr.
func Run(spec Spec, args []string, stdout, stderr io.Writer, logger *log.Logger) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewCommand(spec, logger)
	cmd.SetArgs(negativeNumbersAsPositional(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return spec.MissingExitCode
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

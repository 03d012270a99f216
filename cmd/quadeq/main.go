package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajalab/quadeq"
	"github.com/ajalab/quadeq/log"
	"github.com/ajalab/quadeq/solver"
	"github.com/pkg/errors"
)

const (
	exitSuccess           = 0
	exitInputError        = 1
	exitInvalidInvocation = 2
	exitOutputError       = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	config   quadeq.Config
	noPrompt bool
}

func newFlagSet(name string, stderr io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.config.Epsilon, "epsilon", 0, "treat values within ±epsilon as zero (0 compares exactly)")
	fs.Var(precisionValue{&opts.config.Precision}, "precision", "arithmetic precision: 32 or 64")
	fs.Var(logLevelValue{}, "log-level", "log level: debug, info, error or disabled")
	return fs
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetLevel(log.ErrorLevel)

	if len(args) > 0 && args[0] == "gentest" {
		return runGentest(args[1:], stdin, stdout, stderr)
	}

	var opts options
	fs := newFlagSet("quadeq", stderr, &opts)
	fs.BoolVar(&opts.noPrompt, "no-prompt", false, "do not print the prompt before reading coefficients")
	fs.BoolVar(&opts.config.Trace, "trace", false, "print the branches taken to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: quadeq [flags] [a b c]")
		fmt.Fprintln(stderr, "       quadeq gentest [flags] < coefficients")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitSuccess
		}
		return exitInvalidInvocation
	}

	var in io.Reader
	switch fs.NArg() {
	case 0:
		in = stdin
	case 3:
		in = strings.NewReader(strings.Join(fs.Args(), " "))
		opts.noPrompt = true
	default:
		fmt.Fprintf(stderr, "quadeq: expected 0 or 3 coefficients, got %d\n", fs.NArg())
		fs.Usage()
		return exitInvalidInvocation
	}

	prog, err := opts.config.Open()
	if err != nil {
		fmt.Fprintf(stderr, "quadeq: %v\n", err)
		return exitInvalidInvocation
	}

	if !opts.noPrompt {
		if _, err := io.WriteString(stdout, quadeq.Prompt); err != nil {
			fmt.Fprintf(stderr, "quadeq: %v\n", err)
			return exitOutputError
		}
	}

	res, err := prog.Execute(in, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "quadeq: %v\n", err)
		var inputErr *quadeq.InputError
		if errors.As(err, &inputErr) {
			return exitInputError
		}
		if res == nil {
			// Reading stdin failed.
			return exitInputError
		}
		return exitOutputError
	}
	if res.Trace != nil {
		fmt.Fprintf(stderr, "trace: %v\n", res.Trace)
	}
	return exitSuccess
}

func runGentest(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	var pkgName, funcName, output string
	fs := newFlagSet("quadeq gentest", stderr, &opts)
	fs.StringVar(&pkgName, "pkg", "main", "package name of the generated test file")
	fs.StringVar(&funcName, "func", "TestSolve", "name of the generated test function")
	fs.StringVar(&output, "o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitSuccess
		}
		return exitInvalidInvocation
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "quadeq gentest: unexpected arguments %v\n", fs.Args())
		return exitInvalidInvocation
	}

	prog, err := opts.config.Open()
	if err != nil {
		fmt.Fprintf(stderr, "quadeq gentest: %v\n", err)
		return exitInvalidInvocation
	}

	coefs, err := quadeq.ReadAll(stdin, opts.config.Precision)
	if err != nil {
		fmt.Fprintf(stderr, "quadeq gentest: %v\n", err)
		return exitInputError
	}
	log.Info.Printf("generating %s for %d equations", funcName, len(coefs))

	tf, err := prog.GenerateTest(pkgName, funcName, coefs)
	if err != nil {
		fmt.Fprintf(stderr, "quadeq gentest: %v\n", err)
		return exitInputError
	}
	src, err := tf.Format()
	if err != nil {
		fmt.Fprintf(stderr, "quadeq gentest: %v\n", err)
		return exitOutputError
	}

	if output == "" {
		_, err = stdout.Write(src)
	} else {
		err = os.WriteFile(output, src, 0644)
	}
	if err != nil {
		fmt.Fprintf(stderr, "quadeq gentest: %v\n", errors.Wrap(err, "failed to write test file"))
		return exitOutputError
	}
	return exitSuccess
}

type precisionValue struct {
	p *solver.Precision
}

func (v precisionValue) String() string {
	if v.p == nil {
		return solver.Float32.String()
	}
	return v.p.String()
}

func (v precisionValue) Set(s string) error {
	p, err := solver.ParsePrecision(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

type logLevelValue struct{}

func (logLevelValue) String() string {
	return log.GetLevel().String()
}

func (logLevelValue) Set(s string) error {
	if !log.SetLevelByName(s) {
		return errors.Errorf("unknown log level %q", s)
	}
	return nil
}

// Package commands implements the subcommands of the enumerators CLI.
package commands

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/libreim/enumerators/pkg/blog"
	"github.com/libreim/enumerators/pkg/numseq"
)

const ErrInvalidInput errorkit.Error = "invalid input"

const header = `# Some examples of Enumerators and Enumerable
# author: David Charte
# license: MIT
# source: https://libreim.github.io/blog/2015/08/24/ruby-enumerators/
`

// Mux registers every command.
func Mux(l *logging.Logger, b *blog.Blog) *cli.Mux {
	var m cli.Mux
	m.Handle("demo", DemoCommand{Logger: l, Blog: b})
	m.Handle("primes", PrimesCommand{Logger: l})
	m.Handle("fibonacci", FibonacciCommand{Logger: l})
	m.Handle("posts", PostsCommand{Logger: l, Blog: b})
	return &m
}

type PrimesCommand struct {
	Count int `arg:"0" default:"10" desc:"how many primes to print"`

	Logger *logging.Logger
}

func (cmd PrimesCommand) Summary() string { return "print the first N prime numbers" }

func (cmd PrimesCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	ps, err := firstPrimes(cmd.Count)
	if err != nil {
		cmd.Logger.Error(r.Context(), "primes failed", logging.ErrField(err))
		handleError(w, err)
		return
	}
	cmd.Logger.Debug(r.Context(), "primes computed", logging.Field("count", len(ps)))
	fmt.Fprintln(w, formatList(ps))
}

type FibonacciCommand struct {
	N int `arg:"0" default:"200" desc:"the index n of F(n), where F(0) is 0"`

	Logger *logging.Logger
}

func (cmd FibonacciCommand) Summary() string { return "print F(n) of the Fibonacci sequence" }

func (cmd FibonacciCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	v, err := fibonacciAt(cmd.N)
	if err != nil {
		cmd.Logger.Error(r.Context(), "fibonacci failed", logging.ErrField(err))
		handleError(w, err)
		return
	}
	cmd.Logger.Debug(r.Context(), "fibonacci computed",
		logging.Field("n", cmd.N),
		logging.Field("digits", len(v.String())))
	fmt.Fprintln(w, v.String())
}

type PostsCommand struct {
	Author string `flag:"author,a" default:"Mario" desc:"the author whose post titles are printed"`

	Logger *logging.Logger
	Blog   *blog.Blog
}

func (cmd PostsCommand) Summary() string { return "print the post titles of an author" }

func (cmd PostsCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	titles, err := blog.PostsBy(cmd.Blog, cmd.Author)
	if err != nil {
		cmd.Logger.Error(r.Context(), "posts query failed", logging.ErrField(err))
		handleError(w, err)
		return
	}
	cmd.Logger.Debug(r.Context(), "posts found",
		logging.Field("author", cmd.Author),
		logging.Field("count", len(titles)))
	writeLines(w, titles)
}

// DemoCommand prints every example one after the other.
type DemoCommand struct {
	Logger *logging.Logger
	Blog   *blog.Blog
}

func (cmd DemoCommand) Summary() string { return "run every example" }

func (cmd DemoCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	if err := cmd.run(w); err != nil {
		cmd.Logger.Error(r.Context(), "demo failed", logging.ErrField(err))
		handleError(w, err)
		return
	}
	cmd.Logger.Debug(r.Context(), "demo finished")
}

func (cmd DemoCommand) run(w io.Writer) error {
	fmt.Fprint(w, header+"\n")

	ps, err := firstPrimes(10)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "First 10 primes:")
	fmt.Fprintln(w, formatList(ps))

	// The original demo labels this line "200th element" while counting F(0) as the first one.
	// The value printed here is F(200).
	fib, err := fibonacciAt(200)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nThe 200th element of the Fibonacci sequence:")
	fmt.Fprintln(w, fib.String())

	titles, err := blog.PostsBy(cmd.Blog, "Mario")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nPosts authored by Mario:")
	writeLines(w, titles)
	return nil
}

// handleError reports a failed command with the general error exit code.
func handleError(w cli.ResponseWriter, err error) {
	w.ExitCode(cli.ExitCodeError)
	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok {
		out = ew.Stderr()
	}
	fmt.Fprintln(out, err.Error())
}

func firstPrimes(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, ErrInvalidInput.F("prime count must not be negative: %d", n)
	}
	return numseq.Primes().Take(n)
}

func fibonacciAt(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrInvalidInput.F("fibonacci index must not be negative: %d", n)
	}
	return numseq.Fibonacci().At(n)
}

func formatList(vs []*big.Int) string {
	var parts = make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

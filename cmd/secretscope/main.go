package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"example.com/secretscope/pkg/managed"
	"example.com/secretscope/pkg/secret"
	"example.com/secretscope/pkg/util/random"
	"example.com/secretscope/pkg/wiper"

	"golang.org/x/term"
)

func fatalIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
func fatalf(format string, a ...interface{}) { fmt.Fprintf(os.Stderr, format+"\n", a...); os.Exit(1) }

// Shared so consecutive prompts on a piped stdin do not lose buffered lines.
var stdin = bufio.NewReader(os.Stdin)

// readSecret prompts without echo on a terminal and falls back to a line
// from stdin otherwise. The returned slice is the caller's to wipe.
func readSecret(prompt string) []byte {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		fatalIf(err)
		return b
	}
	line, err := stdin.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		fatalIf(err)
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "check" {
		check(os.Args[2:])
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "gen" {
		gen(os.Args[2:])
		return
	}
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "mask" {
		args = args[1:]
	}
	mask(args)
}

func mask(args []string) {
	fs := flag.NewFlagSet("mask", flag.ExitOnError)
	var filler string
	fs.StringVar(&filler, "filler", "*", "mask character")
	fatalIf(fs.Parse(args))
	if len(filler) != 1 {
		fatalf("filler must be a single character")
	}

	res := managed.From(func() (*secret.Secret, error) {
		return secret.New(readSecret("secret: "), secret.WithFiller(filler[0])), nil
	})
	fatalIf(res.Use(func(s *secret.Secret) error {
		fmt.Printf("%s (%d bytes)\n", s, s.Len())
		return nil
	}))
}

func check(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fatalIf(fs.Parse(args))

	first := secret.New(readSecret("secret: "))
	defer first.Close()

	res := managed.From(func() (*secret.Secret, error) {
		return secret.New(readSecret("again: ")), nil
	})
	match, err := managed.Get(res, func(s *secret.Secret) (bool, error) {
		return secret.Equal(first, s)
	})
	fatalIf(err)
	if !match {
		fatalf("secrets do not match")
	}
	fmt.Println("match")
}

func gen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	var n int
	fs.IntVar(&n, "n", 24, "length in bytes")
	fatalIf(fs.Parse(args))
	if n <= 0 {
		fatalf("length must be positive")
	}

	res := managed.Of(secret.New(random.Printable(n), secret.WithWiper(wiper.Scramble)))
	fatalIf(res.Use(func(s *secret.Secret) error {
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(b); err != nil {
			return err
		}
		fmt.Println()
		return nil
	}))
}

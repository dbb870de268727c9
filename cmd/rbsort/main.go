// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The rbsort program sorts, counts and combines the lines of text files
// using the ordered maps and sets of package redblack.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jba/redblack"
	"github.com/jba/redblack/conf"
	"github.com/jba/redblack/logger"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "rbsort -?")
	fmt.Fprintln(w, "   Prints this help text")
	fmt.Fprintln(w, "rbsort sort|count|drain File [ConfOverrides]*")
	fmt.Fprintln(w, "   sort prints the distinct lines of File in ascending order")
	fmt.Fprintln(w, "   count prints each distinct line with its number of occurrences")
	fmt.Fprintln(w, "   drain is count, emptying the map smallest line first")
	fmt.Fprintln(w, "rbsort union|intersection|difference|symdiff|compare FileA FileB [ConfOverrides]*")
	fmt.Fprintln(w, "   combines the distinct lines of FileA and FileB")
	fmt.Fprintln(w, "   compare prints how the two sets of lines relate")
	fmt.Fprintln(w, "  A File of - reads standard input")
	fmt.Fprintln(w, "  ConfOverrides are .conf files or Section.Option=Value settings, for instance")
	fmt.Fprintln(w, "      Logging.TraceLevelLogging=redblack")
	fmt.Fprintln(w, "      RBSort.Color=auto|always|never")
}

var errUsage = errors.New("bad arguments")

var fileCounts = map[string]int{
	"sort":         1,
	"count":        1,
	"drain":        1,
	"union":        2,
	"intersection": 2,
	"difference":   2,
	"symdiff":      2,
	"compare":      2,
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, errUsage):
		usage(os.Stderr)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "rbsort: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command line args, reading "-" from stdin and
// writing results to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 1 && args[0] == "-?" {
		usage(stdout)
		return nil
	}
	if len(args) < 2 {
		return errUsage
	}
	var err error
	op := args[0]
	nFiles, ok := fileCounts[op]
	if !ok || len(args) < 1+nFiles {
		return errUsage
	}
	files := args[1 : 1+nFiles]

	confMap := conf.MakeConfMap()
	for _, a := range args[1+nFiles:] {
		if strings.HasSuffix(a, ".conf") {
			err = confMap.UpdateFromFile(a)
		} else {
			err = confMap.UpdateFromString(a)
		}
		if err != nil {
			return fmt.Errorf("bad config override: %v", err)
		}
	}
	if err := logger.Up(confMap); err != nil {
		return err
	}
	defer logger.Down()

	colorize, err := useColor(confMap, stdout)
	if err != nil {
		return err
	}

	var sets []*redblack.Set[string]
	counts := redblack.NewMap[string, int](redblack.CompareFunc(strings.Compare))
	for _, name := range files {
		lines, err := readLines(name, stdin)
		if err != nil {
			return err
		}
		logger.Tracef("read %d lines from %s", len(lines), name)
		s := redblack.NewSet(redblack.CompareFunc(strings.Compare))
		for _, line := range lines {
			if _, err := s.Add(line); err != nil {
				return err
			}
			n, err := counts.GetOrDefault(line, 0)
			if err != nil {
				return err
			}
			if _, _, err := counts.Set(line, n+1); err != nil {
				return err
			}
		}
		sets = append(sets, s)
	}

	switch op {
	case "sort":
		for line := range sets[0].All() {
			fmt.Fprintln(stdout, line)
		}
	case "count":
		for line, n := range counts.All() {
			fmt.Fprintf(stdout, "%d\t%s\n", n, line)
		}
	case "drain":
		for !counts.IsEmpty() {
			line, n, err := counts.PopMin()
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%d\t%s\n", n, line)
		}
	case "compare":
		return compare(stdout, sets[0], sets[1])
	default:
		return combine(stdout, op, sets[0], sets[1], colorize)
	}
	return nil
}

// useColor reports whether symdiff output should be colored,
// according to RBSort.Color.
func useColor(confMap conf.ConfMap, stdout io.Writer) (bool, error) {
	mode, err := confMap.FetchOptionValueString("RBSort", "Color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("RBSort.Color must be auto, always or never, not %q", mode)
}

func combine(w io.Writer, op string, a, b *redblack.Set[string], colorize bool) error {
	var (
		result *redblack.Set[string]
		err    error
	)
	switch op {
	case "union":
		result, err = a.Union(b)
	case "intersection":
		result, err = a.Intersection(b)
	case "difference":
		result, err = a.Difference(b)
	case "symdiff":
		result, err = a.SymmetricDifference(b)
	}
	if err != nil {
		return err
	}
	if op != "symdiff" || !colorize {
		for line := range result.All() {
			fmt.Fprintln(w, line)
		}
		return nil
	}

	onlyA, onlyB := color.New(color.FgRed), color.New(color.FgGreen)
	onlyA.EnableColor()
	onlyB.EnableColor()
	for line := range result.All() {
		inA, err := a.Contains(line)
		if err != nil {
			return err
		}
		c := onlyB
		if inA {
			c = onlyA
		}
		fmt.Fprintln(w, c.Sprint(line))
	}
	return nil
}

func compare(w io.Writer, a, b *redblack.Set[string]) error {
	for _, p := range []struct {
		name string
		f    func(*redblack.Set[string]) (bool, error)
	}{
		{"disjoint", a.IsDisjoint},
		{"A < B", a.IsProperSubset},
		{"A <= B", a.IsSubset},
		{"A == B", a.Equal},
		{"A >= B", a.IsSuperset},
		{"A > B", a.IsProperSuperset},
	} {
		ok, err := p.f(b)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %t\n", p.name, ok)
	}
	return nil
}

func readLines(name string, stdin io.Reader) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the trusted OS debug console commands.
package cmd

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"text/tabwriter"

	"golang.org/x/term"
)

// CmdFn represents a command handler.
type CmdFn func(term *term.Terminal, arg []string) (res string, err error)

// Cmd represents a console command.
type Cmd struct {
	// Name is the command name.
	Name string
	// Args defines the number of command arguments, meant to be in a
	// single space separated line.
	Args int
	// Pattern defines the command syntax and arguments.
	Pattern *regexp.Regexp
	// Syntax defines the Help() command syntax field.
	Syntax string
	// Help defines the Help() command description field.
	Help string
	// Fn defines the command handler.
	Fn CmdFn
}

var cmds = make(map[string]*Cmd)

// Add registers a terminal interface command.
func Add(cmd Cmd) {
	cmds[cmd.Name] = &cmd
}

// Help returns a formatted string with instructions for all registered
// commands.
func Help(term *term.Terminal) string {
	var help bytes.Buffer
	var names []string

	t := tabwriter.NewWriter(&help, 16, 8, 0, '\t', tabwriter.TabIndent)

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		cmd := cmds[name]
		fmt.Fprintf(t, "%s %s\t # %s\n", cmd.Name, cmd.Syntax, cmd.Help)
	}

	t.Flush()

	return string(term.Escape.Cyan) + help.String() + string(term.Escape.Reset)
}

// Handle parses a terminal command line and runs the matching handler,
// printing its result on the terminal.
func Handle(term *term.Terminal, line string) (err error) {
	var match *Cmd
	var arg []string
	var res string

	for _, cmd := range cmds {
		if cmd.Pattern == nil {
			if cmd.Name == line {
				match = cmd
				break
			}
		} else if m := cmd.Pattern.FindStringSubmatch(line); len(m) == cmd.Args+1 {
			match = cmd
			arg = m[1:]
			break
		}
	}

	if match == nil {
		if len(line) != 0 {
			fmt.Fprintln(term, "unknown command, type `help`")
		}

		return
	}

	if res, err = match.Fn(term, arg); err != nil {
		return
	}

	fmt.Fprintln(term, res)

	return
}

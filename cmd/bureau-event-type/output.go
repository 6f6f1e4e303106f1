// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bureau-foundation/eventtype/lib/eventtype"
)

// classStyles colors class labels when writing to a terminal. A nil
// map renders labels unstyled.
type classStyles map[eventtype.Class]lipgloss.Style

func newClassStyles(w io.Writer) classStyles {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}
	return classStyles{
		eventtype.Unknown:     lipgloss.NewStyle().Faint(true),
		eventtype.State:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		eventtype.Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		eventtype.AccountData: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		eventtype.Ephemeral:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		eventtype.ToDevice:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (s classStyles) render(class eventtype.Class) string {
	style, ok := s[class]
	if !ok {
		return class.String()
	}
	return style.Render(class.String())
}

// printType writes "raw<TAB>class".
func (env *environment) printType(eventType eventtype.Type) {
	fmt.Fprintf(env.stdout, "%s\t%s\n", eventType.String(), env.styles.render(eventType.Class()))
}

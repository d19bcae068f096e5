// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/internal/i18n"
	"github.com/toeirei/keysmith/uiadapters"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the character types and their code ranges",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.classes_header"))
			fmt.Fprintln(cmd.OutOrStdout(), renderClassTable())
		},
	}
}

func renderClassTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "TYPE", "CHARACTERS", "CODES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range keygen.AllClasses() {
		lo, hi := c.Range()
		t.Row(
			c.String(),
			uiadapters.ClassLabel(c),
			string(lo)+" .. "+string(hi),
			strconv.Itoa(int(lo))+"-"+strconv.Itoa(int(hi)),
		)
	}
	t.Row(keygen.MixName, i18n.T("class.mix"), "", "")
	return t.Render()
}

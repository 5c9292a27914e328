// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// styles are bound to the destination writer so that color is only emitted
// on terminals.
type styles struct {
	title, header, cell, warn lipgloss.Style
	border                    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:  r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		warn:   r.NewStyle().Foreground(lipgloss.Color("196")),
		border: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}

			return s.cell
		})
}

func num(x float64) string { return strconv.FormatFloat(x, 'f', 4, 64) }

func (s styles) consistencyLine(c Consistency) string {
	line := fmt.Sprintf("λmax=%s  CI=%s  CR=%s", num(c.LambdaMax), num(c.Index), num(c.Ratio))
	if !c.Acceptable {
		line += "  " + s.warn.Render("inconsistent (CR > 0.10)")
	}

	return line
}

func (s styles) comparison(c Comparison) string {
	withApprox := len(c.Weights) > 0 && c.Weights[0].Approximate > 0
	headers := []string{"label", "priority"}
	if withApprox {
		headers = append(headers, "approx")
	}
	t := s.table(headers...)
	for _, w := range c.Weights {
		row := []string{w.Label, num(w.Priority)}
		if withApprox {
			row = append(row, num(w.Approximate))
		}
		t.Row(row...)
	}
	out := ""
	if c.Name != "" {
		out = s.title.Render(c.Name) + "\n"
	}

	return out + t.Render() + "\n" + s.consistencyLine(c.Consistency) + "\n"
}

// WriteComparison renders one comparison result.
func WriteComparison(w io.Writer, f Format, c Comparison) error {
	if f != FormatText {
		return encode(w, f, c)
	}
	_, err := io.WriteString(w, newStyles(w).comparison(c))

	return err
}

// WriteModel renders a hierarchy result: every local comparison, then the
// final ranking.
func WriteModel(w io.Writer, f Format, m Model) error {
	if f != FormatText {
		return encode(w, f, m)
	}
	s := newStyles(w)
	out := s.title.Render("Goal: "+m.Goal) + "\n\n"
	for _, c := range m.Comparisons {
		out += s.comparison(c) + "\n"
	}
	t := s.table("#", "alternative", "score")
	for _, r := range m.Ranking {
		t.Row(strconv.Itoa(r.Rank), r.Label, num(r.Score))
	}
	out += s.title.Render("Ranking") + "\n" + t.Render() + "\n"
	_, err := io.WriteString(w, out)

	return err
}

// WriteScale renders the judgment scale and the Random Index table.
func WriteScale(w io.Writer, f Format, sc Scale) error {
	if f != FormatText {
		return encode(w, f, sc)
	}
	s := newStyles(w)
	t := s.table("n", "RI")
	for _, e := range sc.RandomIndex {
		t.Row(strconv.Itoa(e.Order), strconv.FormatFloat(e.RandomIndex, 'f', 2, 64))
	}
	out := s.title.Render("Saaty scale") + "\n"
	for i, v := range sc.Values {
		if i > 0 {
			out += " "
		}
		out += v
	}
	out += "\n\n" + s.title.Render("Random Index") + "\n" + t.Render() + "\n"
	_, err := io.WriteString(w, out)

	return err
}

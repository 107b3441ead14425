// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/collocation/collocation"
	"github.com/katalvlaran/collocation/matrix"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func newWriter(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	return tw
}

func render(tw table.Writer, format string) {
	if format == formatCSV {
		tw.RenderCSV()
		return
	}
	tw.Render()
}

// renderTC writes one row per system with the TC estimate and diagnostics.
func renderTC(w io.Writer, format string, names []string, st collocation.TCStats) {
	tw := newWriter(w)
	tw.AppendHeader(table.Row{"SYSTEM", "ERR_VAR", "ERR_STD", "SENSITIVITY", "SNR_DB", "RHO2", "VALIDITY"})
	std := collocation.ErrorStdDev(st.ErrVar)
	for i, name := range names {
		tw.AppendRow(table.Row{
			name,
			formatFloat(st.ErrVar[i]),
			formatFloat(std[i]),
			formatFloat(st.Sensitivity[i]),
			formatFloat(st.SNRdB[i]),
			formatFloat(st.RhoTruth2[i]),
			collocation.Classify(st.ErrVar[i]).String(),
		})
	}
	render(tw, format)
}

// renderEC writes the M×M error covariance with system names on both axes.
func renderEC(w io.Writer, format string, names []string, errCov matrix.Matrix) {
	tw := newWriter(w)
	header := table.Row{"SYSTEM"}
	for _, name := range names {
		header = append(header, name)
	}
	tw.AppendHeader(header)
	var v float64
	for i, name := range names {
		row := table.Row{name}
		for j := range names {
			v, _ = errCov.At(i, j)
			row = append(row, formatFloat(v))
		}
		tw.AppendRow(row)
	}
	render(tw, format)
}

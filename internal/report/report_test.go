// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/internal/report"
	"github.com/katalvlaran/ahp/pairwise"
)

func comparison(t *testing.T) report.Comparison {
	t.Helper()
	c, err := pairwise.FromJudgments([]string{"price", "quality", "service"}, []pairwise.Judgment{
		{A: "price", B: "quality", Value: 2},
		{A: "price", B: "service", Value: 4},
		{A: "quality", B: "service", Value: 2},
	})
	require.NoError(t, err)
	res, err := report.FromComparison(c)
	require.NoError(t, err)

	return res
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]report.Format{"text": report.FormatText, "JSON": report.FormatJSON, " yaml ": report.FormatYAML} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := report.ParseFormat("xml")
	assert.Error(t, err)
}

func TestFromComparison(t *testing.T) {
	t.Parallel()

	res := comparison(t)
	assert.Equal(t, 3, res.Judged)
	require.Len(t, res.Weights, 3)
	assert.Equal(t, "price", res.Weights[0].Label)
	assert.InDelta(t, 4.0/7, res.Weights[0].Priority, 1e-9)
	assert.InDelta(t, 4.0/7, res.Weights[0].Approximate, 1e-9)
	assert.True(t, res.Consistency.Acceptable)
}

func TestWriteComparison_Encodings(t *testing.T) {
	t.Parallel()

	res := comparison(t)

	var js bytes.Buffer
	require.NoError(t, report.WriteComparison(&js, report.FormatJSON, res))
	var fromJSON report.Comparison
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Equal(t, res.Weights[1].Label, fromJSON.Weights[1].Label)
	assert.Contains(t, js.String(), `"lambda_max"`)
	assert.Contains(t, js.String(), `"approximate"`)

	var ys bytes.Buffer
	require.NoError(t, report.WriteComparison(&ys, report.FormatYAML, res))
	var fromYAML report.Comparison
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &fromYAML))
	assert.InDelta(t, res.Weights[2].Priority, fromYAML.Weights[2].Priority, 1e-12)
	assert.Contains(t, ys.String(), "cr:")
}

func TestWriteComparison_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteComparison(&buf, report.FormatText, comparison(t)))
	out := buf.String()
	assert.Contains(t, out, "quality")
	assert.Contains(t, out, "0.5714")
	assert.Contains(t, out, "approx")
	assert.Contains(t, out, "CR=0.0000")
	assert.NotContains(t, out, "inconsistent")
}

func TestWriteModel(t *testing.T) {
	t.Parallel()

	crit, err := hierarchy.NewCluster("criteria", hierarchy.NewNode("price", ""), hierarchy.NewNode("comfort", ""))
	require.NoError(t, err)
	alts, err := hierarchy.NewCluster("cars", hierarchy.NewNode("sedan", ""), hierarchy.NewNode("hatch", ""), hierarchy.NewNode("coupe", ""))
	require.NoError(t, err)
	m, err := hierarchy.NewModel("pick a car", crit, alts)
	require.NoError(t, err)
	_, err = m.CompareCriteria([]pairwise.Judgment{{A: "price", B: "comfort", Value: 3}})
	require.NoError(t, err)
	_, err = m.CompareAlternatives("price", []pairwise.Judgment{{A: "hatch", B: "sedan", Value: 3}})
	require.NoError(t, err)
	_, err = m.CompareAlternatives("comfort", []pairwise.Judgment{
		{A: "sedan", B: "hatch", Value: 9}, {A: "hatch", B: "coupe", Value: 9}, {A: "coupe", B: "sedan", Value: 9},
	})
	require.NoError(t, err)

	rep, err := m.Report()
	require.NoError(t, err)
	res := report.FromReport(rep)
	assert.Equal(t, []string{"comfort"}, res.Inconsistent)
	require.Len(t, res.Ranking, 3)
	assert.Equal(t, 1, res.Ranking[0].Rank)
	assert.Equal(t, "hatch", res.Ranking[0].Label)

	var buf bytes.Buffer
	require.NoError(t, report.WriteModel(&buf, report.FormatText, res))
	out := buf.String()
	assert.Contains(t, out, "Goal: pick a car")
	assert.Contains(t, out, "Ranking")
	assert.Contains(t, out, "inconsistent (CR > 0.10)")

	buf.Reset()
	require.NoError(t, report.WriteModel(&buf, report.FormatJSON, res))
	assert.Contains(t, buf.String(), `"inconsistent": [`)
}

func TestWriteScale(t *testing.T) {
	t.Parallel()

	sc := report.ScaleInfo()
	assert.Len(t, sc.Values, 17)
	require.Len(t, sc.RandomIndex, 15)
	assert.InDelta(t, 0.58, sc.RandomIndex[2].RandomIndex, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, report.WriteScale(&buf, report.FormatText, sc))
	assert.Contains(t, buf.String(), "1/9 1/8")
	assert.Contains(t, buf.String(), "1.59")

	buf.Reset()
	require.NoError(t, report.WriteScale(&buf, report.FormatYAML, sc))
	assert.Contains(t, buf.String(), "random_index:")
}

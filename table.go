package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/webtor-io/movie-card/handlers/movie/helpers"
	"github.com/webtor-io/movie-card/models"
)

func newTable(header ...any) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	return tw
}

func movieInfoTable(m *models.Movie, f *helpers.FormatHelper) table.Writer {
	poster := m.PosterPath
	if !m.HasPoster() {
		poster = "-"
	}
	tw := newTable("Champ", "Valeur")
	tw.AppendRows([]table.Row{
		{"Titre", m.Title},
		{"Date de sortie", f.FormatReleaseDate(m.ReleaseDate)},
		{"Note", f.FormatRating(m.VoteAverage) + "/10"},
		{"Votes", f.FormatVoteCount(m.VoteCount)},
		{"Affiche", poster},
	})
	return tw
}

// castTable numbers cast members starting from 1.
func castTable(cast []models.CastMember) table.Writer {
	tw := newTable("#", "Acteur", "Rôle")
	for i, cm := range cast {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), cm.Name, cm.Character})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	return tw
}

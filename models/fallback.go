package models

// FallbackMovie returns the placeholder shown when the remote movie
// cannot be loaded.
func FallbackMovie() *Movie {
	return &Movie{
		ID:          "fallback",
		Title:       "Le Fabuleux Destin d'Amélie Poulain",
		Overview:    "Amélie, une jeune serveuse dans un bar de Montmartre, passe son temps à observer les gens et à laisser son imagination divaguer. Elle s'est fixé un but : faire le bien de ceux qui l'entourent.",
		ReleaseDate: "2001-04-25",
		VoteAverage: 7.9,
		VoteCount:   11000,
		PosterPath:  "https://image.tmdb.org/t/p/w500/nSxDa3M9aMvGVLoItzWTepQ5h5d.jpg",
		Casts: []CastMember{
			{ID: "1", Name: "Audrey Tautou", Character: "Amélie Poulain"},
			{ID: "2", Name: "Mathieu Kassovitz", Character: "Nino Quincampoix"},
			{ID: "3", Name: "Rufus", Character: "Raphaël Poulain"},
			{ID: "4", Name: "Lorella Cravotta", Character: "Amandine Fouet"},
			{ID: "5", Name: "Serge Merlin", Character: "Raymond Dufayel"},
			{ID: "6", Name: "Jamel Debbouze", Character: "Lucien"},
		},
	}
}

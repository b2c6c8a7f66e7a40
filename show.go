package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/webtor-io/movie-card/handlers/movie/helpers"
	"github.com/webtor-io/movie-card/models"
	ml "github.com/webtor-io/movie-card/services/movie_loader"
)

func makeShowCMD() cli.Command {
	showCMD := cli.Command{
		Name:   "show",
		Usage:  "Loads the movie once and prints it",
		Action: show,
	}
	showCMD.Flags = configureMovie(showCMD.Flags)
	return showCMD
}

func show(c *cli.Context) error {
	loader, err := makeLoader(c, http.DefaultClient)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	loader.Start()
	sn, err := loader.Wait(ctx)
	if err != nil {
		return errors.Wrap(err, "interrupted while loading movie")
	}
	fmt.Fprint(c.App.Writer, renderSnapshot(sn))
	return nil
}

func renderSnapshot(sn ml.Snapshot) string {
	var out string
	if sn.Err != nil {
		out += fmt.Sprintf("Impossible de charger le film : %v\n", sn.Err)
	}
	if sn.Movie == nil {
		return out
	}
	if sn.State == ml.StateErrorWithFallback {
		out += "Un film de remplacement est affiché.\n"
	}
	return out + renderMovie(sn.Movie)
}

func renderMovie(m *models.Movie) string {
	out := movieInfoTable(m, helpers.NewFormatHelper()).Render() + "\n" + m.Overview + "\n"
	cast := m.TopCast()
	if len(cast) == 0 {
		return out
	}
	return out + castTable(cast).Render() + "\n"
}

package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	serveCMD := makeServeCMD()
	showCMD := makeShowCMD()
	app.Commands = []cli.Command{serveCMD, showCMD}
}

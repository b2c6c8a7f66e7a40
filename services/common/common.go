package common

import (
	"github.com/urfave/cli"
)

var (
	SessionSecretFlag = "secret"
	UseCSRFFlag       = "use-csrf"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   SessionSecretFlag,
			Usage:  "session secret",
			Value:  "secret123",
			EnvVar: "SESSION_SECRET",
		},
		cli.BoolTFlag{
			Name:   UseCSRFFlag,
			Usage:  "protect forms with csrf tokens",
			EnvVar: "USE_CSRF",
		},
	)

	return f
}

package main

import (
	"os"

	"github.com/luscis/underlay/cmd/api"
	"github.com/luscis/underlay/cmd/api/v1"
	"github.com/luscis/underlay/pkg/libol"
)

func main() {
	api.Conf = api.GetEnv("CONF", api.Conf)
	app := &api.App{}
	app.New()

	v1.Commands(app)
	if err := app.Run(os.Args); err != nil {
		libol.Fatal("%s", err)
	}
}

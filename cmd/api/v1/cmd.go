package v1

import (
	"github.com/luscis/underlay/cmd/api"
	"github.com/luscis/underlay/pkg/config"
	"github.com/luscis/underlay/pkg/libol"
	"github.com/urfave/cli/v2"
)

type Cmd struct {
}

func (c Cmd) Device(ctx *cli.Context) (*config.Device, error) {
	file := ctx.String("conf")
	device, err := config.LoadDevice(file)
	if err != nil {
		return nil, err
	}
	if !api.Verbose {
		libol.SetLevel(device.Log.Verbose)
	}
	if device.Log.File != "" {
		libol.SetLogger(device.Log.File, libol.Logger.Level)
	}
	libol.Cmd("Cmd.Device %s from %s", device.Hostname, file)
	return device, nil
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	return api.Out(data, format, tmpl)
}

func Commands(app *api.App) {
	BGP{}.Commands(app)
	Link{}.Commands(app)
}

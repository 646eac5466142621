package v1

import (
	"github.com/luscis/underlay/cmd/api"
	"github.com/luscis/underlay/pkg/libol"
	"github.com/luscis/underlay/pkg/schema"
	"github.com/luscis/underlay/pkg/underlay"
	"github.com/urfave/cli/v2"
)

// underlay bgp ls
// underlay bgp save --output leaf1.yaml

type BGP struct {
	Cmd
}

func (b BGP) Derive(c *cli.Context) (*schema.Device, error) {
	device, err := b.Device(c)
	if err != nil {
		return nil, err
	}
	routerBgp, err := underlay.RouterBgp(device)
	if err != nil {
		libol.Error("BGP.Derive %s: %s", device.Hostname, err)
		return nil, err
	}
	return &schema.Device{
		Hostname:  device.Hostname,
		RouterBgp: routerBgp,
	}, nil
}

func (b BGP) List(c *cli.Context) error {
	out, err := b.Derive(c)
	if err != nil {
		return err
	}
	if out.RouterBgp == nil {
		libol.Info("BGP.List %s: no router_bgp", out.Hostname)
		return nil
	}
	return b.Out(out.RouterBgp, c.String("format"), "")
}

func (b BGP) Save(c *cli.Context) error {
	out, err := b.Derive(c)
	if err != nil {
		return err
	}
	file := c.String("output")
	if err := libol.MarshalSave(out, file, true); err != nil {
		return err
	}
	libol.Info("BGP.Save %s to %s", out.Hostname, file)
	return nil
}

func (b BGP) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "bgp",
		Usage: "Underlay BGP",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display router_bgp",
				Aliases: []string{"ls"},
				Action:  b.List,
			},
			{
				Name:  "save",
				Usage: "Save structured config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "output file: .json|.yaml",
						Required: true,
					},
				},
				Action: b.Save,
			},
		},
	})
}

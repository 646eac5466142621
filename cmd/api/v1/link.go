package v1

import (
	"github.com/luscis/underlay/cmd/api"
	"github.com/luscis/underlay/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Link struct {
	Cmd
}

func (l Link) Tmpl() string {
	return `# total {{ len . }}
{{ps -16 "peer"}} {{ps -12 "interface"}} {{ps -18 "ip"}} {{ps -18 "peer ip"}} {{ps -10 "as"}} {{ps -10 "peer as"}} {{ps -8 "protocol"}} {{ps -8 "underlay"}}
{{- range . }}
{{ps -16 .Peer}} {{ps -12 .Interface}} {{ps -18 .Address}} {{ps -18 .PeerAddress}} {{ps -10 .BgpAs}} {{ps -10 .PeerBgpAs}} {{ps -8 .RoutingProtocol}} {{ps -8 .Underlay}}
{{- end }}
`
}

func (l Link) List(c *cli.Context) error {
	device, err := l.Device(c)
	if err != nil {
		return err
	}
	links, err := device.Links()
	if err != nil {
		return err
	}
	items := make([]schema.P2PLink, 0, len(links))
	for _, link := range links {
		items = append(items, schema.P2PLink{
			Peer:            link.Data.Peer,
			Interface:       link.Data.Interface,
			PeerInterface:   link.Data.PeerInterface,
			Address:         link.Data.Ip,
			PeerAddress:     link.Data.PeerIp,
			BgpAs:           link.Data.BgpAs.String(),
			PeerBgpAs:       link.Data.PeerBgpAs.String(),
			RoutingProtocol: link.RoutingProtocol,
			Underlay:        link.InUnderlay(),
		})
	}
	return l.Out(items, c.String("format"), l.Tmpl())
}

func (l Link) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "link",
		Usage: "P2P links of the device",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display p2p links",
				Aliases: []string{"ls"},
				Action:  l.List,
			},
		},
	})
}

// Package underlay derives the underlay routing configuration of a device
// from its resolved p2p links.
package underlay

import (
	"github.com/luscis/underlay/pkg/config"
	"github.com/luscis/underlay/pkg/libol"
	"github.com/luscis/underlay/pkg/schema"
)

// Deriver builds the router_bgp fragment for the underlay. It holds no state
// between calls and is safe for concurrent use.
type Deriver struct {
	DataModel   string
	UnderlayBgp bool
	Rfc5549     bool
	BgpAs       string
}

// NewDeriver takes the underlay facts from device.
func NewDeriver(device *config.Device) *Deriver {
	return &Deriver{
		DataModel:   device.DataModel,
		UnderlayBgp: device.UnderlayBgp(),
		Rfc5549:     device.UnderlayRfc5549(),
		BgpAs:       device.BgpAs.String(),
	}
}

// RouterBgp returns the router_bgp fragment for links, or nil when the
// underlay is not BGP or no link produced anything.
func (d *Deriver) RouterBgp(links []*config.P2PLink) (*schema.RouterBgp, error) {
	if !d.UnderlayBgp {
		return nil, nil
	}

	var neighbors []schema.BgpNeighbor
	var interfaces []schema.BgpNeighborInterface
	var afNeighbors []schema.BgpAddressFamilyNeighbor
	for _, link := range links {
		if !link.InUnderlay() && !link.IsEbgp() {
			continue
		}
		data := link.Data
		if data == nil {
			data = &config.P2PLinkData{}
		}
		if data.BgpAs == "" || data.PeerBgpAs == "" {
			return nil, asRequired(d.DataModel)
		}

		neighbor := schema.BgpNeighbor{
			RemoteAs:    data.PeerBgpAs.String(),
			Peer:        data.Peer,
			Description: data.Peer,
		}

		if d.Rfc5549 {
			if link.IsEbgp() {
				// IPv4 numbered eBGP leg, keep the next hop IPv4.
				afNeighbors = append(afNeighbors, schema.BgpAddressFamilyNeighbor{
					IpAddress: libol.IPFromPrefix(data.PeerIp),
					NextHop: schema.BgpNextHop{
						AddressFamilyIpv6: schema.BgpNextHopFamily{Enabled: false},
					},
				})
			} else {
				interfaces = append(interfaces, schema.BgpNeighborInterface{
					Name:        data.Interface,
					RemoteAs:    neighbor.RemoteAs,
					Peer:        neighbor.Peer,
					Description: neighbor.Description,
				})
				continue
			}
		}

		if data.Ip == "" || data.PeerIp == "" {
			return nil, ipRequired(d.DataModel)
		}
		neighbor.IpAddress = libol.IPFromPrefix(data.PeerIp)
		neighbor.Bfd = link.Bfd
		if data.BgpAs.String() != d.BgpAs {
			neighbor.LocalAs = data.BgpAs.String()
		}
		neighbors = append(neighbors, neighbor)
	}

	routerBgp := &schema.RouterBgp{}
	found := false
	if len(neighbors) > 0 {
		routerBgp.Neighbors = neighbors
		found = true
	}
	if len(interfaces) > 0 {
		routerBgp.NeighborInterfaces = interfaces
		found = true
	}
	if len(afNeighbors) > 0 {
		routerBgp.AddressFamilyIpv4 = &schema.BgpAddressFamily{
			Neighbors: afNeighbors,
		}
		found = true
	}
	if !found {
		return nil, nil
	}
	return routerBgp, nil
}

// RouterBgp resolves the links of device and derives its router_bgp
// fragment.
func RouterBgp(device *config.Device) (*schema.RouterBgp, error) {
	deriver := NewDeriver(device)
	if !deriver.UnderlayBgp {
		return nil, nil
	}
	links, err := device.Links()
	if err != nil {
		return nil, err
	}
	return deriver.RouterBgp(links)
}

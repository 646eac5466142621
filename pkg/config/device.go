package config

import (
	"github.com/luscis/underlay/pkg/libol"
)

const (
	DefaultDataModel = "core_interfaces"
	DefaultRouting   = "ebgp"
)

// Device is the input document of one device: its global BGP facts and the
// p2p links of the fabric it belongs to.
type Device struct {
	File      string            `json:"-" yaml:"-"`
	Hostname  string            `json:"hostname" yaml:"hostname"`
	DataModel string            `json:"data_model,omitempty" yaml:"data_model,omitempty"`
	BgpAs     ASN               `json:"bgp_as,omitempty" yaml:"bgp_as,omitempty"`
	Routing   string            `json:"underlay_routing_protocol,omitempty" yaml:"underlay_routing_protocol,omitempty"`
	Rfc5549   bool              `json:"underlay_rfc5549,omitempty" yaml:"underlay_rfc5549,omitempty"`
	Log       Log               `json:"log,omitempty" yaml:"log,omitempty"`
	Profiles  []*P2PLinkProfile `json:"p2p_links_profiles,omitempty" yaml:"p2p_links_profiles,omitempty"`
	P2PLinks  []*P2PLink        `json:"p2p_links,omitempty" yaml:"p2p_links,omitempty"`
}

func LoadDevice(file string) (*Device, error) {
	d := &Device{File: file}
	if err := d.Load(); err != nil {
		return nil, err
	}
	d.Correct()
	libol.Debug("LoadDevice %s: %d links", d.Hostname, len(d.P2PLinks))
	return d, nil
}

func (d *Device) Load() error {
	return libol.UnmarshalLoad(d, d.File)
}

func (d *Device) Correct() {
	d.Log.Correct()
	if d.DataModel == "" {
		d.DataModel = DefaultDataModel
	}
	if d.Routing == "" {
		d.Routing = DefaultRouting
	}
}

// UnderlayBgp reports whether the underlay runs eBGP.
func (d *Device) UnderlayBgp() bool {
	return d.Routing == "ebgp"
}

func (d *Device) UnderlayRfc5549() bool {
	return d.UnderlayBgp() && d.Rfc5549
}

func (d *Device) FindProfile(name string) *P2PLinkProfile {
	for _, obj := range d.Profiles {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Links returns the p2p links terminating on this device, in input order,
// with their profile merged and Data resolved. The document is not
// modified.
func (d *Device) Links() ([]*P2PLink, error) {
	links := make([]*P2PLink, 0, len(d.P2PLinks))
	for _, obj := range d.P2PLinks {
		if obj.NodeIndex(d.Hostname) == -1 {
			continue
		}
		link := *obj
		if link.Profile != "" {
			profile := d.FindProfile(link.Profile)
			if profile == nil {
				return nil, libol.NewErr("p2p link %s: profile %s not found", link.Id(), link.Profile)
			}
			link.Merge(profile)
		}
		link.Correct()
		if err := link.Resolve(d.Hostname); err != nil {
			return nil, err
		}
		links = append(links, &link)
	}
	return links, nil
}

package config

import (
	"encoding/json"
	"strings"

	"github.com/luscis/underlay/pkg/libol"
)

// ASN is a BGP AS number kept in its textual form, e.g. "65001" or
// "65000.100". It decodes from both JSON strings and numbers.
type ASN string

func (a *ASN) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*a = ASN(value)
		return nil
	}
	// asdot numbers must be quoted, a bare 65000.100 arrives as a float.
	var value json.Number
	if err := json.Unmarshal(data, &value); err != nil {
		return libol.NewErr("invalid as %s", data)
	}
	if _, err := value.Int64(); err != nil {
		return libol.NewErr("invalid as %s, quote asdot numbers", data)
	}
	*a = ASN(value.String())
	return nil
}

func (a ASN) String() string {
	return string(a)
}

// P2PLinkData is a link as seen from one of its nodes. Empty values are
// absent.
type P2PLinkData struct {
	Peer          string `json:"peer,omitempty" yaml:"peer,omitempty"`
	Interface     string `json:"interface,omitempty" yaml:"interface,omitempty"`
	PeerInterface string `json:"peer_interface,omitempty" yaml:"peer_interface,omitempty"`
	Ip            string `json:"ip,omitempty" yaml:"ip,omitempty"`
	PeerIp        string `json:"peer_ip,omitempty" yaml:"peer_ip,omitempty"`
	BgpAs         ASN    `json:"bgp_as,omitempty" yaml:"bgp_as,omitempty"`
	PeerBgpAs     ASN    `json:"peer_bgp_as,omitempty" yaml:"peer_bgp_as,omitempty"`
}

type P2PLink struct {
	Nodes           []string     `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Interfaces      []string     `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Ip              []string     `json:"ip,omitempty" yaml:"ip,omitempty"`
	Subnet          string       `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	As              []ASN        `json:"as,omitempty" yaml:"as,omitempty"`
	Profile         string       `json:"profile,omitempty" yaml:"profile,omitempty"`
	RoutingProtocol string       `json:"routing_protocol,omitempty" yaml:"routing_protocol,omitempty"`
	Bfd             *bool        `json:"bfd,omitempty" yaml:"bfd,omitempty"`
	Underlay        *bool        `json:"include_in_underlay_protocol,omitempty" yaml:"include_in_underlay_protocol,omitempty"`
	Data            *P2PLinkData `json:"-" yaml:"-"`
}

func (l *P2PLink) Correct() {
	if l.Underlay == nil {
		underlay := true
		l.Underlay = &underlay
	}
	if l.Data == nil {
		l.Data = &P2PLinkData{}
	}
}

// InUnderlay reports whether the link takes part in the underlay routing
// protocol. Links without the flag default to true.
func (l *P2PLink) InUnderlay() bool {
	return l.Underlay == nil || *l.Underlay
}

func (l *P2PLink) IsEbgp() bool {
	return l.RoutingProtocol == "ebgp"
}

func (l *P2PLink) NodeIndex(hostname string) int {
	for index, node := range l.Nodes {
		if node == hostname {
			return index
		}
	}
	return -1
}

func (l *P2PLink) Id() string {
	return strings.Join(l.Nodes, "_")
}

// Merge fills the values unset on the link from profile.
func (l *P2PLink) Merge(profile *P2PLinkProfile) {
	if profile == nil {
		return
	}
	if l.Interfaces == nil {
		l.Interfaces = profile.Interfaces
	}
	if l.Ip == nil {
		l.Ip = profile.Ip
	}
	if l.Subnet == "" {
		l.Subnet = profile.Subnet
	}
	if l.As == nil {
		l.As = profile.As
	}
	if l.RoutingProtocol == "" {
		l.RoutingProtocol = profile.RoutingProtocol
	}
	if l.Bfd == nil {
		l.Bfd = profile.Bfd
	}
	if l.Underlay == nil {
		l.Underlay = profile.Underlay
	}
}

func pick(values []string, index int) string {
	if index >= 0 && index < len(values) {
		return values[index]
	}
	return ""
}

func pickAs(values []ASN, index int) ASN {
	if index >= 0 && index < len(values) {
		return values[index]
	}
	return ""
}

// Resolve fills Data as seen from hostname. The link must contain hostname
// in its nodes.
func (l *P2PLink) Resolve(hostname string) error {
	if len(l.Nodes) != 2 {
		return libol.NewErr("p2p link %s: expected two nodes", l.Id())
	}
	index := l.NodeIndex(hostname)
	if index == -1 {
		return libol.NewErr("p2p link %s: %s not in nodes", l.Id(), hostname)
	}
	peer := 1 - index
	data := &P2PLinkData{
		Peer:          pick(l.Nodes, peer),
		Interface:     pick(l.Interfaces, index),
		PeerInterface: pick(l.Interfaces, peer),
		Ip:            pick(l.Ip, index),
		PeerIp:        pick(l.Ip, peer),
		BgpAs:         pickAs(l.As, index),
		PeerBgpAs:     pickAs(l.As, peer),
	}
	if l.Ip == nil && l.Subnet != "" {
		hosts, err := libol.SubnetHosts(l.Subnet)
		if err != nil {
			return libol.NewErr("p2p link %s: %s", l.Id(), err)
		}
		data.Ip = hosts[index]
		data.PeerIp = hosts[peer]
	}
	l.Data = data
	return nil
}

type P2PLinkProfile struct {
	Name            string   `json:"name" yaml:"name"`
	Interfaces      []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Ip              []string `json:"ip,omitempty" yaml:"ip,omitempty"`
	Subnet          string   `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	As              []ASN    `json:"as,omitempty" yaml:"as,omitempty"`
	RoutingProtocol string   `json:"routing_protocol,omitempty" yaml:"routing_protocol,omitempty"`
	Bfd             *bool    `json:"bfd,omitempty" yaml:"bfd,omitempty"`
	Underlay        *bool    `json:"include_in_underlay_protocol,omitempty" yaml:"include_in_underlay_protocol,omitempty"`
}

package schema

// BgpNeighbor is a numbered underlay peer keyed by the peer address.
type BgpNeighbor struct {
	IpAddress   string `json:"ip_address" yaml:"ip_address"`
	RemoteAs    string `json:"remote_as" yaml:"remote_as"`
	Peer        string `json:"peer,omitempty" yaml:"peer,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Bfd         *bool  `json:"bfd,omitempty" yaml:"bfd,omitempty"`
	LocalAs     string `json:"local_as,omitempty" yaml:"local_as,omitempty"`
}

// BgpNeighborInterface is an unnumbered peer reached over an interface.
type BgpNeighborInterface struct {
	Name        string `json:"name" yaml:"name"`
	RemoteAs    string `json:"remote_as" yaml:"remote_as"`
	Peer        string `json:"peer,omitempty" yaml:"peer,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type BgpNextHopFamily struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type BgpNextHop struct {
	AddressFamilyIpv6 BgpNextHopFamily `json:"address_family_ipv6" yaml:"address_family_ipv6"`
}

// BgpAddressFamilyNeighbor overrides a neighbor inside address-family ipv4.
type BgpAddressFamilyNeighbor struct {
	IpAddress string     `json:"ip_address" yaml:"ip_address"`
	NextHop   BgpNextHop `json:"next_hop" yaml:"next_hop"`
}

type BgpAddressFamily struct {
	Neighbors []BgpAddressFamilyNeighbor `json:"neighbors,omitempty" yaml:"neighbors,omitempty"`
}

// RouterBgp is the router_bgp fragment produced for the underlay.
type RouterBgp struct {
	Neighbors          []BgpNeighbor          `json:"neighbors,omitempty" yaml:"neighbors,omitempty"`
	NeighborInterfaces []BgpNeighborInterface `json:"neighbor_interfaces,omitempty" yaml:"neighbor_interfaces,omitempty"`
	AddressFamilyIpv4  *BgpAddressFamily      `json:"address_family_ipv4,omitempty" yaml:"address_family_ipv4,omitempty"`
}

// Device is the structured configuration document for one device.
type Device struct {
	Hostname  string     `json:"hostname" yaml:"hostname"`
	RouterBgp *RouterBgp `json:"router_bgp,omitempty" yaml:"router_bgp,omitempty"`
}

// P2PLink is the resolved view of a p2p link as displayed by the cli.
type P2PLink struct {
	Peer            string `json:"peer"`
	Interface       string `json:"interface"`
	PeerInterface   string `json:"peer_interface"`
	Address         string `json:"ip"`
	PeerAddress     string `json:"peer_ip"`
	BgpAs           string `json:"bgp_as"`
	PeerBgpAs       string `json:"peer_bgp_as"`
	RoutingProtocol string `json:"routing_protocol"`
	Underlay        bool   `json:"include_in_underlay_protocol"`
}

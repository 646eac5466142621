package libol

import (
	"fmt"
	"net/netip"
	"strings"
)

// IPFromPrefix returns the address part of an "address/length" string.
// A value without a length is returned unchanged.
func IPFromPrefix(prefix string) string {
	return strings.SplitN(prefix, "/", 2)[0]
}

// SubnetHosts returns the first two usable host addresses of subnet, each
// carrying the subnet's prefix length. A /31 (or /127) yields both of its
// addresses.
func SubnetHosts(subnet string) ([]string, error) {
	p, err := netip.ParsePrefix(subnet)
	if err != nil {
		return nil, NewErr("subnet %s: %s", subnet, err)
	}
	p = p.Masked()
	bits := p.Bits()
	size := p.Addr().BitLen()
	if bits >= size {
		return nil, NewErr("subnet %s has less than two hosts", subnet)
	}

	first := p.Addr()
	if bits < size-1 {
		first = first.Next()
	}
	second := first.Next()
	if !p.Contains(second) {
		return nil, NewErr("subnet %s has less than two hosts", subnet)
	}
	return []string{
		fmt.Sprintf("%s/%d", first, bits),
		fmt.Sprintf("%s/%d", second, bits),
	}, nil
}

package v1

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luscis/underlay/cmd/api"
	"github.com/luscis/underlay/pkg/underlay"
	"github.com/stretchr/testify/assert"
)

const fakeLeaf = `
hostname: leaf1
bgp_as: 65101
p2p_links:
  - nodes: [leaf1, spine1]
    interfaces: [Ethernet1, Ethernet1]
    ip: [10.0.0.0/31, 10.0.0.1/31]
    as: [65101, 65000]
`

const fakeOspf = `
hostname: leaf1
underlay_routing_protocol: ospf
p2p_links:
  - nodes: [leaf1, spine1]
    ip: [10.0.0.0/31, 10.0.0.1/31]
`

const fakeNoAs = `
hostname: leaf1
bgp_as: 65101
p2p_links:
  - nodes: [leaf1, spine1]
    ip: [10.0.0.0/31, 10.0.0.1/31]
`

func writeDevice(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "leaf1.yaml")
	err := os.WriteFile(file, []byte(content), 0600)
	assert.Nil(t, err)
	return file
}

func run(t *testing.T, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	stdout := api.Writer
	api.Writer = buf
	defer func() {
		api.Writer = stdout
	}()

	app := &api.App{}
	app.New()
	Commands(app)
	err := app.Run(append([]string{"underlay"}, args...))
	return buf.String(), err
}

func TestBGPList(t *testing.T) {
	file := writeDevice(t, fakeLeaf)
	out, err := run(t, "-c", file, "-f", "json", "bgp", "ls")
	assert.Nil(t, err)
	assert.Contains(t, out, `"ip_address": "10.0.0.1"`)
	assert.Contains(t, out, `"remote_as": "65000"`)
	assert.NotContains(t, out, "local_as")

	out, err = run(t, "-c", file, "bgp", "ls")
	assert.Nil(t, err)
	assert.Contains(t, out, "ip_address: 10.0.0.1")
}

func TestBGPListAbsent(t *testing.T) {
	file := writeDevice(t, fakeOspf)
	out, err := run(t, "-c", file, "bgp", "ls")
	assert.Nil(t, err)
	assert.Equal(t, "", out, "be the same.")
}

func TestBGPListInvalid(t *testing.T) {
	file := writeDevice(t, fakeNoAs)
	out, err := run(t, "-c", file, "bgp", "ls")
	assert.Equal(t, "", out, "be the same.")
	var invalid *underlay.InvalidInputsError
	assert.True(t, errors.As(err, &invalid))

	_, err = run(t, "-c", filepath.Join(t.TempDir(), "none.yaml"), "bgp", "ls")
	assert.NotNil(t, err)
}

func TestBGPSave(t *testing.T) {
	file := writeDevice(t, fakeLeaf)
	dir := t.TempDir()

	output := filepath.Join(dir, "leaf1.json")
	_, err := run(t, "-c", file, "bgp", "save", "-o", output)
	assert.Nil(t, err)
	data, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.Contains(t, string(data), `"hostname": "leaf1"`)
	assert.Contains(t, string(data), `"ip_address": "10.0.0.1"`)

	output = filepath.Join(dir, "leaf1.yaml")
	_, err = run(t, "-c", file, "bgp", "save", "-o", output)
	assert.Nil(t, err)
	data, err = os.ReadFile(output)
	assert.Nil(t, err)
	assert.Contains(t, string(data), "hostname: leaf1")
	assert.Contains(t, string(data), "router_bgp:")
	assert.Contains(t, string(data), "ip_address: 10.0.0.1")
	assert.NotContains(t, string(data), "{")

	_, err = run(t, "-c", writeDevice(t, fakeNoAs), "bgp", "save", "-o", filepath.Join(dir, "bad.json"))
	assert.NotNil(t, err)
	_, err = os.Stat(filepath.Join(dir, "bad.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLinkList(t *testing.T) {
	file := writeDevice(t, fakeLeaf)
	out, err := run(t, "-c", file, "-f", "table", "link", "ls")
	assert.Nil(t, err)
	assert.Contains(t, out, "# total 1")
	assert.Contains(t, out, "peer             interface")
	assert.Contains(t, out, "spine1           Ethernet1    10.0.0.0/31        10.0.0.1/31        65101      65000      ")
	assert.Contains(t, out, "true")

	out, err = run(t, "-c", file, "-f", "json", "link", "ls")
	assert.Nil(t, err)
	assert.Contains(t, out, `"peer_ip": "10.0.0.1/31"`)
}

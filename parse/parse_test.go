package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsync/confsync/format"
	"github.com/confsync/confsync/schema"
)

const testNS = "urn:test:interfaces"

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	mod, err := schema.LoadYAML([]byte(`
namespace: urn:test:interfaces
elements:
  - name: interfaces
    order: [interface]
  - name: interface
    order: [name, mtu]
    keys: [name]
`))
	require.NoError(t, err)
	reg := schema.NewRegistry()
	require.NoError(t, reg.Register(mod))
	return reg
}

func TestParseYAML(t *testing.T) {
	forest, err := ParseForest([]byte(`
interfaces:
  interface:
    - name: eth0
      mtu: 1500
    - name: eth1
      mtu: 9000
system:
  hostname: box1
  ntp:
`), ParseRegistry(testRegistry(t)), ParseNamespace(testNS))
	require.NoError(t, err)
	require.Len(t, forest, 2)

	ifaces := forest.First()
	assert.Equal(t, "interfaces", ifaces.Name)
	assert.Equal(t, testNS, ifaces.Namespace)
	require.NotNil(t, ifaces.Meta, "schema metadata must attach")

	// a sequence expands into repeated siblings sharing the tag
	entries := ifaces.ChildrenNamed("interface")
	require.Len(t, entries, 2)
	first := entries.First()
	assert.Equal(t, []string{"name"}, first.Keys())
	require.NotNil(t, first.Child("mtu"))
	assert.Equal(t, "1500", first.Child("mtu").ValueString())
	assert.True(t, first.Child("mtu").IsLeaf())
	assert.Same(t, ifaces, first.Parent)

	sys := forest.Last()
	assert.Nil(t, sys.Meta, "undeclared elements decode opaque")
	require.NotNil(t, sys.Child("ntp"))
	assert.False(t, sys.Child("ntp").IsLeaf(), "empty value decodes as presence container")
}

func TestParseYAMLScalarRoot(t *testing.T) {
	_, err := ParseForest([]byte("just a scalar\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}

func TestParseSingleRoot(t *testing.T) {
	n, err := Parse([]byte("system:\n  hostname: box1\n"))
	require.NoError(t, err)
	assert.Equal(t, "system", n.Name)

	_, err = Parse([]byte("a: 1\nb: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single root")
}

func TestParseXML(t *testing.T) {
	forest, err := ParseForest([]byte(`
<interfaces xmlns="urn:test:interfaces">
  <interface inactive="true">
    <name>eth0</name>
    <mtu>1500</mtu>
  </interface>
</interfaces>
`), ParseFormat(format.XMLFormat), ParseRegistry(testRegistry(t)))
	require.NoError(t, err)
	require.Len(t, forest, 1)

	ifaces := forest.First()
	assert.Equal(t, testNS, ifaces.Namespace)
	require.NotNil(t, ifaces.Meta)

	ent := ifaces.Child("interface")
	require.NotNil(t, ent)
	assert.Equal(t, "true", ent.Attrs["inactive"])
	assert.Equal(t, []string{"name"}, ent.Keys())
	require.NotNil(t, ent.Child("mtu"))
	assert.Equal(t, "1500", ent.Child("mtu").ValueString())
}

func TestParseXMLDefaultNamespace(t *testing.T) {
	forest, err := ParseForest([]byte("<system><hostname>box1</hostname></system>"),
		ParseFormat(format.XMLFormat), ParseNamespace(testNS))
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, testNS, forest.First().Namespace)
	assert.Equal(t, testNS, forest.First().Child("hostname").Namespace)
}

func TestParseXMLMalformed(t *testing.T) {
	_, err := ParseForest([]byte("<a><b></a>"), ParseFormat(format.XMLFormat))
	require.Error(t, err)
}

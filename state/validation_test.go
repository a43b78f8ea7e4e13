package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameValidator_Valid(t *testing.T) {
	assert.NoError(t, NameValidator("1"))
	assert.NoError(t, NameValidator("RouterA"))
	assert.NoError(t, NameValidator("abcd-a.com"))
}

func TestNameValidator_Invalid(t *testing.T) {
	assert.Error(t, NameValidator(""))
	assert.Error(t, NameValidator("node name"))
	assert.Error(t, NameValidator("\t"))
	assert.Error(t, NameValidator("a!b"))
	assert.Error(t, NameValidator("a;b"))
	assert.Error(t, NameValidator("a:b"))
	assert.Error(t, NameValidator(strings.Repeat("a", 200)))
}

func TestParseDistance(t *testing.T) {
	d, err := ParseDistance("0")
	assert.NoError(t, err)
	assert.Equal(t, Distance(0), d)

	d, err = ParseDistance("42")
	assert.NoError(t, err)
	assert.Equal(t, Distance(42), d)

	for _, s := range []string{"", "-1", "1.5", "ten", "+3", "99999999999"} {
		_, err = ParseDistance(s)
		assert.ErrorIs(t, err, ErrInvalidDistance, s)
	}
}

func TestTopologyValidator_BadNeighbour(t *testing.T) {
	cfg := &TopologyCfg{Routers: []RouterCfg{{Id: "A", Neighbours: []NodeId{"b c"}}}}
	assert.ErrorIs(t, TopologyValidator(cfg), ErrMalformed)
}

func TestNameValidator_Sentinel(t *testing.T) {
	assert.ErrorIs(t, NameValidator("a b"), ErrInvalidName)
	assert.ErrorIs(t, AddressValidator("net:1"), ErrInvalidName)
	assert.NoError(t, AddressValidator("10.0.0.0/24"))
}

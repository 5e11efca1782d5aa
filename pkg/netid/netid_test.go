package netid

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstIPv4(t *testing.T) {
	t.Parallel()

	t.Run("picks first non-loopback IPv4", func(t *testing.T) {
		t.Parallel()

		addrs := []net.Addr{
			&net.IPNet{IP: net.ParseIP("::1")},
			&net.IPNet{IP: net.ParseIP("127.0.0.1")},
			&net.IPNet{IP: net.ParseIP("192.168.1.10"), Mask: net.CIDRMask(24, 32)},
			&net.IPNet{IP: net.ParseIP("10.0.0.5"), Mask: net.CIDRMask(8, 32)},
		}

		assert.Equal(t, "192.168.1.10", firstIPv4(addrs))
	})

	t.Run("skips IPv6-only address lists", func(t *testing.T) {
		t.Parallel()

		addrs := []net.Addr{
			&net.IPNet{IP: net.ParseIP("fe80::1")},
			&net.IPAddr{IP: net.ParseIP("2001:db8::1")},
		}

		assert.Empty(t, firstIPv4(addrs))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, firstIPv4(nil))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	// Environment-dependent: either a usable IPv4 identity or a zero value.
	id := Resolve()
	if id.IsZero() {
		return
	}

	ip := net.ParseIP(id.IP)
	assert.NotNil(t, ip)
	assert.NotNil(t, ip.To4())
	assert.False(t, ip.IsLoopback())
}

func TestIdentityIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Identity{}.IsZero())
	assert.False(t, Identity{IP: "192.0.2.1"}.IsZero())
	assert.False(t, Identity{MAC: "02:42:ac:11:00:02"}.IsZero())
}

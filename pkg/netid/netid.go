package netid

import "net"

// Identity is a host network identity. The zero value means no suitable
// interface was found.
type Identity struct {
	IP  string
	MAC string
}

// IsZero reports whether no identity was resolved.
func (id Identity) IsZero() bool {
	return id.IP == "" && id.MAC == ""
}

// Resolve scans the host's network interfaces and returns the first one that
// is up, not a loopback, and carries an IPv4 address. Returns a zero Identity
// when no such interface exists.
func Resolve() Identity {
	ifaces, err := net.Interfaces()
	if err != nil {
		return Identity{}
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		if ip := firstIPv4(addrs); ip != "" {
			return Identity{
				IP:  ip,
				MAC: iface.HardwareAddr.String(),
			}
		}
	}

	return Identity{}
}

// firstIPv4 returns the first non-loopback IPv4 address in addrs, or "".
func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}

		if ip == nil || ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}

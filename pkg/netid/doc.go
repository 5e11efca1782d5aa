// Package netid resolves the host's own network identity: the first
// non-loopback IPv4 address and the hardware address of the interface it
// belongs to.
//
// A host without such an interface is a legitimate condition, not an error;
// Resolve returns a zero Identity and the caller decides how to handle it.
// Resolution is a local enumeration of interfaces with no external I/O.
package netid

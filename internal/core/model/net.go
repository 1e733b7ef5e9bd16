package model

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

const MaxMaskLen = 32

var (
	ErrInvalidAddr    = errors.New("invalid IPv4 address")
	ErrInvalidMaskLen = errors.New("invalid mask length")
)

// Addr is an IPv4 address in host byte order.
type Addr uint32

func AddrFrom4(a, b, c, d byte) Addr {
	return Addr(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

func (addr Addr) Octets() [4]byte {
	return [4]byte{byte(addr >> 24), byte(addr >> 16), byte(addr >> 8), byte(addr)}
}

func (addr Addr) String() string {
	o := addr.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// ParseAddr parses a dotted-quad IPv4 address. Octets may carry redundant
// leading zeros ("192.168.001.001" is 192.168.1.1).
func ParseAddr(s string) (Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w %q: want 4 octets", ErrInvalidAddr, s)
	}

	var octets [4]byte
	for i, part := range parts {
		if part == "" || len(part) > 3 || strings.TrimLeft(part, "0123456789") != "" {
			return 0, fmt.Errorf("%w %q: bad octet %q", ErrInvalidAddr, s, part)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v > math.MaxUint8 {
			return 0, fmt.Errorf("%w %q: octet %q out of range", ErrInvalidAddr, s, part)
		}
		octets[i] = byte(v)
	}

	return AddrFrom4(octets[0], octets[1], octets[2], octets[3]), nil
}

// ParseAddrStrict accepts only the canonical dotted-quad form.
func ParseAddrStrict(s string) (Addr, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil || !ip.Is4() {
		return 0, fmt.Errorf("%w %q", ErrInvalidAddr, s)
	}
	o := ip.As4()
	return AddrFrom4(o[0], o[1], o[2], o[3]), nil
}

// Net is an IPv4 network. Addr never has host bits set when built with NewNet.
type Net struct {
	Addr    Addr
	MaskLen uint8
}

func NewNet(addr Addr, maskLen uint8) (Net, error) {
	if maskLen > MaxMaskLen {
		return Net{}, fmt.Errorf("%w: /%d", ErrInvalidMaskLen, maskLen)
	}
	return Net{Addr: addr & Addr(calcMask(maskLen)), MaskLen: maskLen}, nil
}

func (net Net) Mask() Addr {
	return Addr(calcMask(net.MaskLen))
}

func (net Net) NetworkAddr() Addr {
	return net.Addr & net.Mask()
}

func (net Net) Broadcast() Addr {
	return net.NetworkAddr() | ^net.Mask()
}

// Size is the number of addresses in the network, network and broadcast included.
func (net Net) Size() uint64 {
	return uint64(1) << (MaxMaskLen - net.MaskLen)
}

func (net Net) Contains(ip Addr) bool {
	return ip&net.Mask() == net.NetworkAddr()
}

// ClassfulBase is the default mask length of the historical class the
// network's first octet falls in: A (/8), B (/16) or C (/24).
func (net Net) ClassfulBase() uint8 {
	return ClassfulBase(net.NetworkAddr())
}

func (net Net) String() string {
	return fmt.Sprintf("%s/%d", net.NetworkAddr(), net.MaskLen)
}

func ClassfulBase(addr Addr) uint8 {
	switch first := addr.Octets()[0]; {
	case first < 128:
		return 8
	case first < 192:
		return 16
	default:
		return 24
	}
}

func ClassName(base uint8) string {
	switch base {
	case 8:
		return "A"
	case 16:
		return "B"
	default:
		return "C"
	}
}

func calcMask(maskLen uint8) uint32 {
	return bits.Reverse32(math.MaxUint32 >> (MaxMaskLen - maskLen))
}

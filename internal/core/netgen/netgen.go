package netgen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
)

const (
	DefaultMaxAttempts = 1000

	// Prefixes above /30 leave no usable hosts.
	maxMaskLen = 30
	minNetSize = 4
)

var ErrGenerationFailed = errors.New("network generation failed")

// Rand is the randomness source, satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}

type addrClass struct {
	firstOctetMin, firstOctetMax int
	base                         uint8
}

var classes = []addrClass{
	{firstOctetMin: 1, firstOctetMax: 126, base: 8},
	{firstOctetMin: 128, firstOctetMax: 191, base: 16},
	{firstOctetMin: 192, firstOctetMax: 223, base: 24},
}

// Generator draws random host addresses together with a containing network.
type Generator struct {
	rnd         Rand
	maxAttempts int
	mtx         *sync.Mutex
}

func New(rnd Rand, maxAttempts int) *Generator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		rnd:         rnd,
		maxAttempts: maxAttempts,
		mtx:         &sync.Mutex{},
	}
}

// Generate returns a host address that is neither the network nor the
// broadcast address of its network, the network holding at least 4 addresses
// and its mask length lying between the classful base and /30.
func (gen *Generator) Generate() (model.NetworkSpec, error) {
	gen.mtx.Lock()
	defer gen.mtx.Unlock()

	for attempt := 0; attempt < gen.maxAttempts; attempt++ {
		class := classes[gen.rnd.Intn(len(classes))]
		addr := model.AddrFrom4(
			byte(gen.between(class.firstOctetMin, class.firstOctetMax)),
			byte(gen.between(0, 255)),
			byte(gen.between(0, 255)),
			byte(gen.between(1, 254)),
		)
		maskLen := uint8(gen.between(int(class.base), maxMaskLen))

		net, err := model.NewNet(addr, maskLen)
		if err != nil {
			return model.NetworkSpec{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		if addr == net.NetworkAddr() || addr == net.Broadcast() || net.Size() < minNetSize {
			continue
		}
		return model.NetworkSpec{Addr: addr, Net: net}, nil
	}

	return model.NetworkSpec{}, fmt.Errorf("%w: no valid network after %d attempts", ErrGenerationFailed, gen.maxAttempts)
}

// between draws uniformly from [lo, hi].
func (gen *Generator) between(lo, hi int) int {
	return lo + gen.rnd.Intn(hi-lo+1)
}

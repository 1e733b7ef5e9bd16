package quiz

import (
	"fmt"
	"testing"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
	"github.com/stretchr/testify/require"
)

func mustSpec(t *testing.T, addr model.Addr, maskLen uint8) model.NetworkSpec {
	t.Helper()
	net, err := model.NewNet(addr, maskLen)
	require.NoError(t, err)
	return model.NetworkSpec{Addr: addr, Net: net}
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		name     string
		spec     model.NetworkSpec
		expected [model.QuestionCount]string
	}{
		{
			name:     "192.168.1.10/24",
			spec:     mustSpec(t, model.AddrFrom4(192, 168, 1, 10), 24),
			expected: [model.QuestionCount]string{"192.168.1.0", "192.168.1.255", "1", "254"},
		},
		{
			name:     "class A at classful base",
			spec:     mustSpec(t, model.AddrFrom4(10, 1, 2, 3), 8),
			expected: [model.QuestionCount]string{"10.0.0.0", "10.255.255.255", "1", "16777214"},
		},
		{
			name:     "class B /20",
			spec:     mustSpec(t, model.AddrFrom4(172, 16, 37, 200), 20),
			expected: [model.QuestionCount]string{"172.16.32.0", "172.16.47.255", "16", "4094"},
		},
		{
			name:     "class C /30",
			spec:     mustSpec(t, model.AddrFrom4(200, 10, 10, 6), 30),
			expected: [model.QuestionCount]string{"200.10.10.4", "200.10.10.7", "64", "2"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			quiz := Build(tc.spec)

			require.Equal(t, tc.spec, quiz.Spec)
			require.Equal(t, []string{LabelNetworkAddr, LabelBroadcast, LabelSubnetCount, LabelUsableHosts}, quiz.Labels())
			kinds := []model.QuestionKind{model.AddrQuestion, model.AddrQuestion, model.CountQuestion, model.CountQuestion}
			for i, q := range quiz.Questions {
				require.Equal(t, tc.expected[i], q.Expected, q.Label)
				require.Equal(t, kinds[i], q.Kind, q.Label)
			}
		})
	}
}

func TestSubnetCount(t *testing.T) {
	for _, base := range []uint8{8, 16, 24} {
		for maskLen := uint8(0); maskLen <= 32; maskLen++ {
			expected := uint64(1)
			if maskLen > base {
				expected = uint64(1) << (maskLen - base)
			}
			require.Equal(t, expected, SubnetCount(maskLen, base), fmt.Sprintf("/%d base /%d", maskLen, base))
		}
	}
	require.Equal(t, uint8(0), BorrowedBits(8, 16))
	require.Equal(t, uint8(6), BorrowedBits(30, 24))
}

func TestUsableHosts(t *testing.T) {
	require.Equal(t, uint64(0), UsableHosts(0))
	require.Equal(t, uint64(0), UsableHosts(1))
	require.Equal(t, uint64(0), UsableHosts(2))
	require.Equal(t, uint64(2), UsableHosts(4))
	require.Equal(t, uint64(254), UsableHosts(256))
	require.Equal(t, uint64(1<<32-2), UsableHosts(1<<32))
}

func TestExplain(t *testing.T) {
	text := Explain(mustSpec(t, model.AddrFrom4(172, 16, 37, 200), 20))

	for _, expected := range []string{
		"Address analysed : 172.16.37.200/20",
		"Computed network : 172.16.32.0/20",
		"class B (default mask /16)",
		"-> Result: 172.16.32.0",
		"-> Result: 172.16.47.255",
		"-> Borrowed bits: 4",
		"-> Result: 16 subnet(s)",
		"Total addresses: 4096",
		"-> 4094",
	} {
		require.Contains(t, text, expected)
	}
}

func TestExplain_NoBorrowedBits(t *testing.T) {
	text := Explain(mustSpec(t, model.AddrFrom4(10, 1, 2, 3), 8))

	require.Contains(t, text, "class A (default mask /8)")
	require.Contains(t, text, "-> Borrowed bits: 0")
	require.Contains(t, text, "-> Result: 1 subnet(s)")
}

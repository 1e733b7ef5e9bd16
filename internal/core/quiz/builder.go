package quiz

import (
	"strconv"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
)

const (
	LabelNetworkAddr = "Network address of the subnet"
	LabelBroadcast   = "Broadcast address of the subnet"
	LabelSubnetCount = "Number of possible subnets"
	LabelUsableHosts = "Number of usable hosts in the subnet"
)

// Build derives the questions asked about spec, in canonical order.
func Build(spec model.NetworkSpec) *model.QuizState {
	net := spec.Net
	return &model.QuizState{
		Spec: spec,
		Questions: [model.QuestionCount]model.Question{
			{Label: LabelNetworkAddr, Kind: model.AddrQuestion, Expected: net.NetworkAddr().String()},
			{Label: LabelBroadcast, Kind: model.AddrQuestion, Expected: net.Broadcast().String()},
			{
				Label:    LabelSubnetCount,
				Kind:     model.CountQuestion,
				Expected: strconv.FormatUint(SubnetCount(net.MaskLen, net.ClassfulBase()), 10),
			},
			{
				Label:    LabelUsableHosts,
				Kind:     model.CountQuestion,
				Expected: strconv.FormatUint(UsableHosts(net.Size()), 10),
			},
		},
	}
}

// SubnetCount is the number of subnets carved out of a classful network by
// borrowing maskLen-base bits.
func SubnetCount(maskLen, base uint8) uint64 {
	return uint64(1) << BorrowedBits(maskLen, base)
}

func BorrowedBits(maskLen, base uint8) uint8 {
	if maskLen > base {
		return maskLen - base
	}
	return 0
}

// UsableHosts excludes the network and broadcast addresses.
func UsableHosts(total uint64) uint64 {
	if total < 2 {
		return 0
	}
	return total - 2
}

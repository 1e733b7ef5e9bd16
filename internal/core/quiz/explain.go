package quiz

import (
	"fmt"
	"strings"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
)

// Explain walks through the four derivations for spec.
func Explain(spec model.NetworkSpec) string {
	net := spec.Net
	base := net.ClassfulBase()
	total := net.Size()

	sb := &strings.Builder{}
	fmt.Fprintln(sb, "--- Detailed solution ---")
	fmt.Fprintf(sb, "Address analysed : %s\n", spec.CIDR())
	fmt.Fprintf(sb, "Computed network : %s\n", net)
	fmt.Fprintf(sb, "Original class   : class %s (default mask /%d)\n", model.ClassName(base), base)
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, "1. Network address:")
	fmt.Fprintln(sb, "   The network address is the lowest address of the subnet.")
	fmt.Fprintf(sb, "   -> Result: %s\n", net.NetworkAddr())
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, "2. Broadcast address:")
	fmt.Fprintln(sb, "   The broadcast address is the highest address of the subnet.")
	fmt.Fprintf(sb, "   -> Result: %s\n", net.Broadcast())
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, "3. Number of possible subnets:")
	fmt.Fprintln(sb, "   With a mask longer than the class default there are 2^(borrowed bits) subnets.")
	fmt.Fprintf(sb, "   -> Borrowed bits: %d\n", BorrowedBits(net.MaskLen, base))
	fmt.Fprintf(sb, "   -> Result: %d subnet(s)\n", SubnetCount(net.MaskLen, base))
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, "4. Number of usable hosts:")
	fmt.Fprintf(sb, "   Total addresses: %d\n", total)
	fmt.Fprintf(sb, "   Minus 2 (network + broadcast) -> %d\n", UsableHosts(total))

	return sb.String()
}

// Command mldsa_info prints the ML-DSA parameter sets and the CPU
// features relevant to the batched Keccak engine.
package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sys/cpu"

	"github.com/ironlattice/mldsa"
	"github.com/ironlattice/mldsa/internal/keccak"
)

func main() {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "level\tseed\tpublic key\tprivate key\tsignature")
	fmt.Fprintf(w, "ML-DSA-44\t%d\t%d\t%d\t%d\n",
		mldsa.SeedSize, mldsa.PublicKeySize44, mldsa.PrivateKeySize44, mldsa.SignatureSize44)
	fmt.Fprintf(w, "ML-DSA-65\t%d\t%d\t%d\t%d\n",
		mldsa.SeedSize, mldsa.PublicKeySize65, mldsa.PrivateKeySize65, mldsa.SignatureSize65)
	fmt.Fprintf(w, "ML-DSA-87\t%d\t%d\t%d\t%d\n",
		mldsa.SeedSize, mldsa.PublicKeySize87, mldsa.PrivateKeySize87, mldsa.SignatureSize87)
	_ = w.Flush()

	fmt.Println()
	fmt.Println("goarch:", runtime.GOARCH)
	fmt.Println("keccak engine:", keccak.Engine())
	switch runtime.GOARCH {
	case "amd64":
		fmt.Println("avx2:", cpu.X86.HasAVX2)
		fmt.Println("bmi2:", cpu.X86.HasBMI2)
	case "arm64":
		fmt.Println("sha3 instructions:", cpu.ARM64.HasSHA3)
	}
}

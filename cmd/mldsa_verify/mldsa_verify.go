// Command mldsa_verify checks a signature against a message and a
// hex-encoded public key. It exits 0 when the signature is valid and 1
// when it is not.
package main

import (
	"encoding/hex"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ironlattice/mldsa"
)

func main() {
	var (
		level   = flag.Int("level", 65, "ML-DSA level: 44, 65, or 87")
		pubPath = flag.String("pub", "mldsa.pub", "path to the hex-encoded public key")
		inPath  = flag.String("in", "-", "message file, - for stdin")
		sigPath = flag.String("sig", "mldsa.sig", "path to the hex-encoded signature")
		context = flag.String("context", "", "context string the signature is bound to")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	pub, err := readHexFile(*pubPath)
	if err != nil {
		panic(err)
	}
	sig, err := readHexFile(*sigPath)
	if err != nil {
		panic(err)
	}
	message, err := readMessage(*inPath)
	if err != nil {
		panic(err)
	}

	var verify func(sig, message, context []byte) bool
	switch *level {
	case 44:
		pk, err := mldsa.NewPublicKey44(pub)
		if err != nil {
			panic(err)
		}
		verify = pk.Verify
	case 65:
		pk, err := mldsa.NewPublicKey65(pub)
		if err != nil {
			panic(err)
		}
		verify = pk.Verify
	case 87:
		pk, err := mldsa.NewPublicKey87(pub)
		if err != nil {
			panic(err)
		}
		verify = pk.Verify
	default:
		log.Error("unsupported level", "level", *level)
		os.Exit(2)
	}

	if !verify(sig, message, []byte(*context)) {
		log.Error("signature invalid", "level", *level, "messageBytes", len(message))
		os.Exit(1)
	}
	log.Info("signature valid", "level", *level, "messageBytes", len(message))
}

func readHexFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(strings.TrimSpace(string(b)))
}

func readMessage(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

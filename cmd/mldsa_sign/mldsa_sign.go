// Command mldsa_sign signs a message with a key pair expanded from a
// stored seed and writes the signature as a hex file.
package main

import (
	"crypto/rand"
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
		level         = flag.Int("level", 65, "ML-DSA level: 44, 65, or 87")
		seedPath      = flag.String("seed", "mldsa.seed", "path to the hex-encoded seed")
		inPath        = flag.String("in", "-", "message file, - for stdin")
		sigPath       = flag.String("sig", "mldsa.sig", "output path for the hex-encoded signature")
		context       = flag.String("context", "", "context string the signature is bound to")
		deterministic = flag.Bool("deterministic", false, "derive the signature without fresh randomness")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	seed, err := readHexFile(*seedPath)
	if err != nil {
		panic(err)
	}
	message, err := readMessage(*inPath)
	if err != nil {
		panic(err)
	}

	var sign func(rand io.Reader, message, context []byte) ([]byte, error)
	switch *level {
	case 44:
		key, err := mldsa.NewKey44(seed)
		if err != nil {
			panic(err)
		}
		sign = key.Sign
	case 65:
		key, err := mldsa.NewKey65(seed)
		if err != nil {
			panic(err)
		}
		sign = key.Sign
	case 87:
		key, err := mldsa.NewKey87(seed)
		if err != nil {
			panic(err)
		}
		sign = key.Sign
	default:
		log.Error("unsupported level", "level", *level)
		os.Exit(2)
	}

	rnd := io.Reader(rand.Reader)
	if *deterministic {
		rnd = nil
	}
	sig, err := sign(rnd, message, []byte(*context))
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile(*sigPath, []byte(hex.EncodeToString(sig)+"\n"), 0o644); err != nil {
		panic(err)
	}
	log.Info("signed",
		"level", *level, "messageBytes", len(message), "signatureBytes", len(sig), "sig", *sigPath)
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

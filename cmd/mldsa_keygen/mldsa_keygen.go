// Command mldsa_keygen generates an ML-DSA key pair and writes the seed
// and the public key as hex files. The seed alone regenerates the whole
// key pair, so it is the only secret that needs to be stored.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"log/slog"
	"os"

	"github.com/ironlattice/mldsa"
)

func main() {
	var (
		level    = flag.Int("level", 65, "ML-DSA level: 44, 65, or 87")
		seedPath = flag.String("seed", "mldsa.seed", "output path for the hex-encoded seed")
		pubPath  = flag.String("pub", "mldsa.pub", "output path for the hex-encoded public key")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	var seed, pub []byte
	switch *level {
	case 44:
		key, err := mldsa.GenerateKey44(rand.Reader)
		if err != nil {
			panic(err)
		}
		seed, pub = key.Bytes(), key.PublicKey().Bytes()
	case 65:
		key, err := mldsa.GenerateKey65(rand.Reader)
		if err != nil {
			panic(err)
		}
		seed, pub = key.Bytes(), key.PublicKey().Bytes()
	case 87:
		key, err := mldsa.GenerateKey87(rand.Reader)
		if err != nil {
			panic(err)
		}
		seed, pub = key.Bytes(), key.PublicKey().Bytes()
	default:
		log.Error("unsupported level", "level", *level)
		os.Exit(2)
	}

	if err := os.WriteFile(*seedPath, []byte(hex.EncodeToString(seed)+"\n"), 0o600); err != nil {
		panic(err)
	}
	if err := os.WriteFile(*pubPath, []byte(hex.EncodeToString(pub)+"\n"), 0o644); err != nil {
		panic(err)
	}
	log.Info("generated key pair",
		"level", *level, "seed", *seedPath, "pub", *pubPath, "publicKeyBytes", len(pub))
}

// Command ethproof loads a JSON proof fixture and runs one of the five
// domain verifiers against it, printing the stable failure label on error.
//
// Usage:
//
//	ethproof -mode account -fixture testdata/account.json
//	ethproof -mode header -fixture testdata/header.json -chain 1
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ethproof/ethproof/fixtures"
	"github.com/ethproof/ethproof/verify"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It takes CLI
// arguments without the program name so it can be tested in isolation.
func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid configuration: %v", err)
		return 2
	}

	if err := runMode(cfg); err != nil {
		log.Printf("verification failed: %v", err)
		return 1
	}
	fmt.Println("OK")
	return 0
}

func runMode(cfg config) error {
	switch cfg.Mode {
	case "account":
		f, err := fixtures.LoadAccount(cfg.Fixture)
		if err != nil {
			return err
		}
		return verify.VerifyAccount(f.Account(), f.Proof.ToProofInput(), [32]byte(f.StateRoot))

	case "storage":
		f, err := fixtures.LoadStorage(cfg.Fixture)
		if err != nil {
			return err
		}
		return verify.VerifyStorageProof([32]byte(f.Slot), []byte(f.Value), f.Proof.ToProofInput(), [32]byte(f.StorageHash))

	case "transaction":
		f, err := fixtures.LoadTransaction(cfg.Fixture)
		if err != nil {
			return err
		}
		return verify.VerifyTransactionProof(f.Index, f.Type, f.Partial(), f.Proof.ToProofInput(), [32]byte(f.TxRoot))

	case "receipt":
		f, err := fixtures.LoadReceipt(cfg.Fixture)
		if err != nil {
			return err
		}
		_, err = verify.VerifyReceiptProof(f.BlockNumber, f.Index, f.Type, f.Partial(), f.Proof.ToProofInput(), [32]byte(f.ReceiptsRoot))
		return err

	case "header":
		f, err := fixtures.LoadHeader(cfg.Fixture)
		if err != nil {
			return err
		}
		return verify.VerifyHeader(cfg.ChainID, f.Partial(), []byte(f.RLP))

	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

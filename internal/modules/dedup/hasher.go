// README: Deterministic calculation hashing used as the lead idempotency key.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Inputs are the normalized ingredients of one priced calculation. Two
// requests that differ only in address casing or whitespace hash the same.
type Inputs struct {
	Pickup                 string
	Delivery               string
	ShipDate               string
	TransportType          string
	VehicleType            string
	VehicleValue           string
	PremiumEnhancements    bool
	SpecialLoad            bool
	Inoperable             bool
	SupplementaryInsurance bool
	FinalPrice             float64
}

// Hash returns a 16-hex-character fingerprint of the calculation: SHA-256
// over the canonical pipe-delimited form, truncated to the first 16 hex
// characters. Field order is fixed and part of the contract.
func Hash(in Inputs) string {
	sum := sha256.Sum256([]byte(canonical(in)))
	return hex.EncodeToString(sum[:8])
}

func canonical(in Inputs) string {
	fields := []string{
		normalize(in.Pickup),
		normalize(in.Delivery),
		normalize(in.ShipDate),
		normalize(in.TransportType),
		normalize(in.VehicleType),
		normalize(in.VehicleValue),
		boolBit(in.PremiumEnhancements),
		boolBit(in.SpecialLoad),
		boolBit(in.Inoperable),
		boolBit(in.SupplementaryInsurance),
		fmt.Sprintf("%.2f", in.FinalPrice),
	}
	return strings.Join(fields, "|")
}

// normalize trims, lower-cases, and collapses internal whitespace runs so
// incidental formatting differences do not change the hash.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func boolBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// rollingHash is the degraded deterministic fallback for runtimes without a
// crypto digest. Lower collision resistance, acceptable for a dedup
// optimization; never used for anything security-relevant. Retained for
// parity with legacy client fingerprints.
func rollingHash(s string) string {
	var h uint64
	for _, c := range []byte(s) {
		h = h*31 + uint64(c)
	}
	return fmt.Sprintf("%016x", h)
}

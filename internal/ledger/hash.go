package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/feral-file/farmtrace/internal/adapter"
)

// genesisMarker stands in for the previous hash of the first block
const genesisMarker = "genesis"

// Hasher computes ownership hashes.
// The digest input is the JSON array [productId, ownerId, blockNumber, previousOwnerHash or "genesis"]
// in RFC 8785 canonical form, so field boundaries cannot be shifted between inputs.
type Hasher struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewHasher creates a new hasher
func NewHasher(json adapter.JSON, jcs adapter.JCS) *Hasher {
	return &Hasher{json: json, jcs: jcs}
}

var defaultHasher = NewHasher(adapter.NewJSON(), adapter.NewJCS())

// ComputeOwnershipHash returns the lower-case hex SHA-256 ownership hash of a block
func ComputeOwnershipHash(productID, ownerID string, blockNumber int64, previousOwnerHash *string) (string, error) {
	return defaultHasher.OwnershipHash(productID, ownerID, blockNumber, previousOwnerHash)
}

// OwnershipHash returns the lower-case hex SHA-256 ownership hash of a block
func (h *Hasher) OwnershipHash(productID, ownerID string, blockNumber int64, previousOwnerHash *string) (string, error) {
	prev := genesisMarker
	if previousOwnerHash != nil {
		prev = *previousOwnerHash
	}

	raw, err := h.json.Marshal([]any{productID, ownerID, blockNumber, prev})
	if err != nil {
		return "", fmt.Errorf("failed to marshal hash input: %w", err)
	}

	canonical, err := h.jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize hash input: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

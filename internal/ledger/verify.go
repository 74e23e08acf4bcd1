package ledger

import (
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// VerificationResult is the outcome of a full chain scan
type VerificationResult struct {
	Valid  bool                    `json:"valid"`
	Errors []domain.ChainViolation `json:"errors"`
}

// VerifyChainBlocks checks a chain given in ascending block order.
// It is a pure function: the blocks are never modified.
func VerifyChainBlocks(productID string, blocks []*schema.OwnershipBlock) VerificationResult {
	return defaultHasher.VerifyBlocks(productID, blocks)
}

// VerifyBlocks checks a chain given in ascending block order.
//
// Every stored hash must recompute from the block's own fields, so a block whose number or owner
// was altered is reported as hash-mismatch. Block 1 must have no previous hash and every later
// block must point at the stored hash of the block numbered just before it. A block whose
// predecessor is absent from the chain is a sequence-gap. Once a block fails, its descendants
// cannot chain to a trusted ancestor and are reported as broken-link even when their own hash
// recomputes.
func (h *Hasher) VerifyBlocks(productID string, blocks []*schema.OwnershipBlock) VerificationResult {
	result := VerificationResult{Valid: true, Errors: []domain.ChainViolation{}}

	if len(blocks) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, domain.ChainViolation{
			BlockNumber: 1,
			Reason:      domain.ViolationMissingGenesis,
		})
		return result
	}

	// every block, tampered or not, so a link into a tampered block is told apart from a gap
	present := presence{numbers: make(map[int64]struct{}, len(blocks)), hashes: make(map[string]struct{}, len(blocks))}
	for _, block := range blocks {
		present.numbers[block.BlockNumber] = struct{}{}
		present.hashes[block.OwnershipHash] = struct{}{}
	}

	// number -> trust of blocks whose hash recomputes
	intact := make(map[int64]chainNode, len(blocks))

	for _, block := range blocks {
		reason := h.checkBlock(productID, block, intact, present)
		if reason == "" {
			intact[block.BlockNumber] = chainNode{hash: block.OwnershipHash, trusted: true}
			continue
		}

		if reason != domain.ViolationHashMismatch {
			if _, dup := intact[block.BlockNumber]; !dup {
				intact[block.BlockNumber] = chainNode{hash: block.OwnershipHash}
			}
		}

		result.Valid = false
		result.Errors = append(result.Errors, domain.ChainViolation{
			BlockNumber: block.BlockNumber,
			Reason:      reason,
		})
	}

	return result
}

type chainNode struct {
	hash    string
	trusted bool
}

type presence struct {
	numbers map[int64]struct{}
	hashes  map[string]struct{}
}

// checkBlock returns the violation for block, or "" when it chains to a trusted genesis
func (h *Hasher) checkBlock(productID string, block *schema.OwnershipBlock, intact map[int64]chainNode, present presence) domain.ViolationReason {
	expected, err := h.OwnershipHash(productID, block.OwnerID, block.BlockNumber, block.PreviousOwnerHash)
	if err != nil || expected != block.OwnershipHash {
		return domain.ViolationHashMismatch
	}

	if block.BlockNumber < 1 {
		return domain.ViolationSequenceGap
	}
	if _, dup := intact[block.BlockNumber]; dup {
		return domain.ViolationSequenceGap
	}

	if block.BlockNumber == 1 {
		if block.PreviousOwnerHash != nil {
			return domain.ViolationBrokenLink
		}
		return ""
	}

	if block.PreviousOwnerHash == nil {
		return domain.ViolationBrokenLink
	}

	prev, ok := intact[block.BlockNumber-1]
	if !ok {
		_, numbered := present.numbers[block.BlockNumber-1]
		_, linked := present.hashes[*block.PreviousOwnerHash]
		if numbered || linked {
			return domain.ViolationBrokenLink
		}
		return domain.ViolationSequenceGap
	}

	if *block.PreviousOwnerHash != prev.hash || !prev.trusted {
		return domain.ViolationBrokenLink
	}

	return ""
}

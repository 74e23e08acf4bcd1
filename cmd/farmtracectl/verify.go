package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/api/shared/dto"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/store"
)

// errChainInvalid makes the process exit non-zero when verification fails
var errChainInvalid = errors.New("ownership chain is invalid")

func verifyCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "verify <product-id>",
		Short: "Verify the ownership chain of a product",
		Long: "Verify the ownership chain of a product stored in the database, or with --file " +
			"a chain exported by `chain --out` or the REST API, without touching the database.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID := args[0]

			var result *ledger.VerificationResult
			if file != "" {
				r, err := verifyFile(a, productID, file)
				if err != nil {
					return err
				}
				result = r
			} else {
				r, err := verifyStored(a, cmd, productID)
				if err != nil {
					return err
				}
				result = r
			}

			if err := a.printJSON(cmd, result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("%w: product %s, %d violation(s)", errChainInvalid, productID, len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "verify an exported chain file instead of the database")
	return cmd
}

// verifyFile checks an exported chain without any database access
func verifyFile(a *app, productID, file string) (*ledger.VerificationResult, error) {
	data, err := a.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file: %w", err)
	}

	var exported []dto.BlockResponse
	if err := a.json.Unmarshal(data, &exported); err != nil {
		return nil, fmt.Errorf("failed to parse chain file: %w", err)
	}

	result := ledger.NewHasher(a.json, adapter.NewJCS()).VerifyBlocks(productID, dto.MapDTOToBlocks(exported))
	return &result, nil
}

// verifyStored checks the chain held in the database
func verifyStored(a *app, cmd *cobra.Command, productID string) (*ledger.VerificationResult, error) {
	db, err := a.openDB()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = store.Close(db)
	}()

	st := store.NewPGStore(db)
	product, err := st.GetProductByID(cmd.Context(), productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	result, err := a.newLedger(st).VerifyChain(cmd.Context(), productID)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		logger.Warn("Ownership chain failed verification",
			zap.String("productID", productID),
			zap.Any("violations", result.Errors),
		)
	}
	return result, nil
}

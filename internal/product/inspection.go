package product

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

const (
	maxQualityScore   = 100
	maxCheckTypeLen   = 64
	defaultRecentScan = 10
)

// RecordQualityCheckInput represents an inspection result for a product batch
type RecordQualityCheckInput struct {
	ProductID        string
	InspectorID      string
	CheckType        string
	Score            float64
	Notes            string
	CertificationURL string
}

// RecordScanInput represents a read of a product QR code
type RecordScanInput struct {
	ProductID   string
	UserID      *string
	Location    string
	Coordinates map[string]any
}

// RecordQualityCheck stores an inspection result and adds it to the product history.
// The check is marked verified when the product chain verifies at the time of recording.
func (s *service) RecordQualityCheck(ctx context.Context, input RecordQualityCheckInput) (*schema.QualityCheck, error) {
	input.CheckType = strings.TrimSpace(input.CheckType)
	input.Notes = strings.TrimSpace(input.Notes)
	input.CertificationURL = strings.TrimSpace(input.CertificationURL)

	if input.ProductID == "" || input.InspectorID == "" || input.CheckType == "" {
		return nil, domain.InvalidInput("product, inspector and check type are required")
	}
	if len(input.CheckType) > maxCheckTypeLen {
		return nil, domain.InvalidInput("check type must be at most %d characters", maxCheckTypeLen)
	}
	if input.Score < 0 || input.Score > maxQualityScore {
		return nil, domain.InvalidInput("score must be between 0 and %d", maxQualityScore)
	}
	if input.CertificationURL != "" {
		if u, err := url.ParseRequestURI(input.CertificationURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, domain.InvalidInput("certification url must be an http(s) url")
		}
	}

	product, err := s.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	inspector, err := s.store.GetUserByID(ctx, input.InspectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspector: %w", err)
	}
	if inspector == nil {
		return nil, domain.ErrUserNotFound
	}

	verification, err := s.ledger.VerifyChain(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	var check *schema.QualityCheck
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		now := s.clock.Now()

		var err error
		check, err = tx.CreateQualityCheck(ctx, store.CreateQualityCheckInput{
			ProductID:        product.ID,
			InspectorID:      inspector.ID,
			CheckType:        input.CheckType,
			Score:            input.Score,
			Notes:            input.Notes,
			CertificationURL: input.CertificationURL,
			Verified:         verification.Valid,
			CreatedAt:        now,
		})
		if err != nil {
			return err
		}

		_, err = tx.CreateProductEvent(ctx, store.CreateProductEventInput{
			ProductID: product.ID,
			EventType: schema.ProductEventTypeQualityCheck,
			UserID:    inspector.ID,
			Message:   fmt.Sprintf("%s recorded a %s check scoring %.1f", inspector.Name, check.CheckType, check.Score),
			Extra: map[string]any{
				"qualityCheckId": check.ID,
				"checkType":      check.CheckType,
				"score":          check.Score,
				"verified":       check.Verified,
			},
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record quality check: %w", err)
	}

	logger.InfoCtx(ctx, "Recorded quality check",
		zap.String("product_id", product.ID),
		zap.String("inspector_id", inspector.ID),
		zap.String("check_type", check.CheckType),
		zap.Float64("score", check.Score),
		zap.Bool("verified", check.Verified),
	)

	if product.OwnerID != inspector.ID {
		productID := product.ID
		s.notifier.Notify(ctx, domain.Notification{
			UserID:    product.OwnerID,
			Title:     "Quality check recorded",
			Message:   fmt.Sprintf("%s inspected %s (%s)", inspector.Name, product.Name, check.CheckType),
			Type:      domain.NotificationTypeQualityCheck,
			ProductID: &productID,
		})
	}

	return check, nil
}

// GetQualityChecks returns the quality checks of a product, newest first
func (s *service) GetQualityChecks(ctx context.Context, id string) ([]*schema.QualityCheck, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	checks, err := s.store.GetQualityChecksByProductID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quality checks: %w", err)
	}
	if checks == nil {
		checks = []*schema.QualityCheck{}
	}
	return checks, nil
}

// RecordScan stores a read of a product QR code. Anonymous scans carry no user.
func (s *service) RecordScan(ctx context.Context, input RecordScanInput) (*schema.Scan, error) {
	if input.ProductID == "" {
		return nil, domain.InvalidInput("product is required")
	}

	if _, err := s.GetProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	if input.UserID != nil {
		user, err := s.store.GetUserByID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
	}

	scan, err := s.store.CreateScan(ctx, store.CreateScanInput{
		ProductID:   input.ProductID,
		UserID:      input.UserID,
		Location:    strings.TrimSpace(input.Location),
		Coordinates: input.Coordinates,
		CreatedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record scan: %w", err)
	}

	logger.DebugCtx(ctx, "Recorded scan", zap.String("product_id", scan.ProductID), zap.String("scan_id", scan.ID))

	return scan, nil
}

// RecentScans returns the latest scans with their product
func (s *service) RecentScans(ctx context.Context, filter store.ScanQueryFilter) ([]*schema.Scan, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultRecentScan
	}

	scans, err := s.store.ListRecentScans(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scans: %w", err)
	}
	if scans == nil {
		scans = []*schema.Scan{}
	}
	return scans, nil
}

// GetStats returns the dashboard counters
func (s *service) GetStats(ctx context.Context) (*store.Stats, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

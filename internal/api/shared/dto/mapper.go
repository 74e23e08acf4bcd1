package dto

import (
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// MapUserToDTO maps a schema user to its response
func MapUserToDTO(u *schema.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// MapUsersToDTO maps schema users to responses
func MapUsersToDTO(users []*schema.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, MapUserToDTO(u))
	}
	return out
}

// MapProductToDTO maps a schema product to its response
func MapProductToDTO(p *schema.Product) ProductResponse {
	attributes := map[string]any(p.Attributes)
	if attributes == nil {
		attributes = map[string]any{}
	}

	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		BatchID:    p.BatchID,
		QRCode:     p.QRCode,
		OwnerID:    p.OwnerID,
		Status:     p.Status,
		Attributes: attributes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// MapProductsToDTO maps schema products to responses
func MapProductsToDTO(products []*schema.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, MapProductToDTO(p))
	}
	return out
}

// MapBlockToDTO maps a schema ownership block to its response
func MapBlockToDTO(b *schema.OwnershipBlock) BlockResponse {
	canEditFields := []string(b.CanEditFields)
	if canEditFields == nil {
		canEditFields = []string{}
	}

	return BlockResponse{
		ID:                b.ID,
		ProductID:         b.ProductID,
		BlockNumber:       b.BlockNumber,
		OwnerID:           b.OwnerID,
		Role:              b.Role,
		Username:          b.Username,
		Name:              b.Name,
		AddedBy:           b.AddedBy,
		CanEditFields:     canEditFields,
		TransferType:      b.TransferType,
		PreviousOwnerHash: b.PreviousOwnerHash,
		OwnershipHash:     b.OwnershipHash,
		CreatedAt:         b.CreatedAt,
	}
}

// MapBlocksToDTO maps a chain to responses, keeping its order
func MapBlocksToDTO(blocks []*schema.OwnershipBlock) []BlockResponse {
	out := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, MapBlockToDTO(b))
	}
	return out
}

// MapTransferToDTO maps a schema transfer to its response
func MapTransferToDTO(t *schema.OwnershipTransfer) TransferResponse {
	return TransferResponse{
		ID:           t.ID,
		ProductID:    t.ProductID,
		FromUserID:   t.FromUserID,
		ToUserID:     t.ToUserID,
		TransferType: t.TransferType,
		Status:       t.Status,
		Notes:        t.Notes,
		BlockNumber:  t.BlockNumber,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		ResolvedAt:   t.ResolvedAt,
	}
}

// MapTransfersToDTO maps schema transfers to responses
func MapTransfersToDTO(transfers []*schema.OwnershipTransfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, MapTransferToDTO(t))
	}
	return out
}

// MapProductEventsToDTO maps product history entries to responses
func MapProductEventsToDTO(events []*schema.ProductEvent) []ProductEventResponse {
	out := make([]ProductEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ProductEventResponse{
			ID:        e.ID,
			ProductID: e.ProductID,
			EventType: e.EventType,
			UserID:    e.UserID,
			Message:   e.Message,
			Extra:     e.Extra,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

// MapNotificationsToDTO maps stored notifications to responses
func MapNotificationsToDTO(notifications []*schema.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			ProductID: n.ProductID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

// MapDTOToBlocks maps exported blocks back to schema blocks, e.g. for offline verification
func MapDTOToBlocks(blocks []BlockResponse) []*schema.OwnershipBlock {
	out := make([]*schema.OwnershipBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, &schema.OwnershipBlock{
			ID:                b.ID,
			ProductID:         b.ProductID,
			BlockNumber:       b.BlockNumber,
			OwnerID:           b.OwnerID,
			Role:              b.Role,
			Username:          b.Username,
			Name:              b.Name,
			AddedBy:           b.AddedBy,
			CanEditFields:     b.CanEditFields,
			TransferType:      b.TransferType,
			PreviousOwnerHash: b.PreviousOwnerHash,
			OwnershipHash:     b.OwnershipHash,
			CreatedAt:         b.CreatedAt,
		})
	}
	return out
}

// MapQualityCheckToDTO maps a quality check to a response
func MapQualityCheckToDTO(q *schema.QualityCheck) QualityCheckResponse {
	return QualityCheckResponse{
		ID:               q.ID,
		ProductID:        q.ProductID,
		InspectorID:      q.InspectorID,
		CheckType:        q.CheckType,
		Score:            q.Score,
		Notes:            q.Notes,
		CertificationURL: q.CertificationURL,
		Verified:         q.Verified,
		CreatedAt:        q.CreatedAt,
	}
}

// MapQualityChecksToDTO maps quality checks to responses
func MapQualityChecksToDTO(checks []*schema.QualityCheck) []QualityCheckResponse {
	out := make([]QualityCheckResponse, 0, len(checks))
	for _, q := range checks {
		out = append(out, MapQualityCheckToDTO(q))
	}
	return out
}

// MapScanToDTO maps a scan to a response, embedding its product when loaded
func MapScanToDTO(s *schema.Scan) ScanResponse {
	resp := ScanResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		UserID:      s.UserID,
		Location:    s.Location,
		Coordinates: s.Coordinates,
		CreatedAt:   s.CreatedAt,
	}
	if s.Product != nil {
		p := MapProductToDTO(s.Product)
		resp.Product = &p
	}
	return resp
}

// MapScansToDTO maps scans to responses
func MapScansToDTO(scans []*schema.Scan) []ScanResponse {
	out := make([]ScanResponse, 0, len(scans))
	for _, s := range scans {
		out = append(out, MapScanToDTO(s))
	}
	return out
}

// MapStatsToDTO maps the dashboard counters to a response
func MapStatsToDTO(s *store.Stats) StatsResponse {
	return StatsResponse{
		TotalProducts:       s.TotalProducts,
		VerifiedBatches:     s.VerifiedBatches,
		ActiveShipments:     s.ActiveShipments,
		AverageQualityScore: s.AverageQualityScore,
	}
}

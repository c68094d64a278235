package queries

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
)

var (
	ErrCourtNotFound = errs.New("court not found")
)

// CatalogQueries serves the read side of the bookable inventory: courts,
// coaches, equipment and the current pricing rules.
type CatalogQueries interface {
	ListCourts(ctx context.Context, includeInactive bool) ([]CourtView, error)
	GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListCoaches(ctx context.Context) ([]CoachView, error)
	ListEquipment(ctx context.Context) ([]EquipmentView, error)
	ListPricingRules(ctx context.Context) ([]PricingRuleView, error)
	ListEnabledPricingRules(ctx context.Context) ([]PricingRuleView, error)
}

type CatalogReadStore interface {
	ListCourts(ctx context.Context, includeInactive bool) ([]CourtView, error)
	FindCourtByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListCoaches(ctx context.Context) ([]CoachView, error)
	ListEquipment(ctx context.Context) ([]EquipmentView, error)
	ListPricingRules(ctx context.Context) ([]PricingRuleView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		readStore: readStore,
	}
}

func (q *catalogQueriesImpl) ListCourts(ctx context.Context, includeInactive bool) ([]CourtView, error) {
	return q.readStore.ListCourts(ctx, includeInactive)
}

func (q *catalogQueriesImpl) GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	view, err := q.readStore.FindCourtByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListCoaches(ctx context.Context) ([]CoachView, error) {
	return q.readStore.ListCoaches(ctx)
}

func (q *catalogQueriesImpl) ListEquipment(ctx context.Context) ([]EquipmentView, error) {
	return q.readStore.ListEquipment(ctx)
}

func (q *catalogQueriesImpl) ListPricingRules(ctx context.Context) ([]PricingRuleView, error) {
	return q.readStore.ListPricingRules(ctx)
}

// ListEnabledPricingRules is the member-facing view: disabled rules stay hidden.
func (q *catalogQueriesImpl) ListEnabledPricingRules(ctx context.Context) ([]PricingRuleView, error) {
	rules, err := q.readStore.ListPricingRules(ctx)
	if err != nil {
		return nil, err
	}
	enabled := make([]PricingRuleView, 0, len(rules))
	for _, rule := range rules {
		if rule.Enabled {
			enabled = append(enabled, rule)
		}
	}
	return enabled, nil
}

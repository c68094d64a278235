package commands

import (
	"context"

	"courtbook/internal/domain/coach"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/equipment"
	"courtbook/internal/infra"
)

// SeedCommands loads a small demo catalog for development environments.
// Seeding is idempotent: rows whose names already exist are skipped.
type SeedCommands interface {
	SeedDemoData(ctx context.Context) error
}

type seedCommandsImpl struct {
	courts    CourtRepository
	coaches   CoachRepository
	equipment EquipmentRepository
}

func NewSeedCommands(courts CourtRepository, coaches CoachRepository, equipment EquipmentRepository) SeedCommands {
	return &seedCommandsImpl{
		courts:    courts,
		coaches:   coaches,
		equipment: equipment,
	}
}

func (s *seedCommandsImpl) SeedDemoData(ctx context.Context) error {
	if err := s.seedCourts(ctx); err != nil {
		return err
	}
	if err := s.seedCoaches(ctx); err != nil {
		return err
	}
	return s.seedEquipment(ctx)
}

func (s *seedCommandsImpl) seedCourts(ctx context.Context) error {
	courts := []struct {
		name      string
		courtType court.Type
		basePrice int64
	}{
		{"Center Court", court.TypeIndoor, 4000},
		{"Court 2", court.TypeIndoor, 3000},
		{"Court 3", court.TypeOutdoor, 2000},
		{"Court 4", court.TypeOutdoor, 2000},
	}

	for _, c := range courts {
		entity, err := court.NewCourt(c.name, c.courtType, c.basePrice, true)
		if err != nil {
			return err
		}
		if _, err := s.courts.Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue
			}
			return err
		}
	}
	return nil
}

func (s *seedCommandsImpl) seedCoaches(ctx context.Context) error {
	coaches := []struct {
		name           string
		price          int64
		specialization string
	}{
		{"Aya Tanaka", 3000, "singles"},
		{"Ken Watanabe", 2500, "doubles"},
		{"Maria Lopez", 3500, "juniors"},
	}

	for _, c := range coaches {
		entity, err := coach.NewCoach(c.name, c.price, c.specialization)
		if err != nil {
			return err
		}
		if _, err := s.coaches.Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue
			}
			return err
		}
	}
	return nil
}

func (s *seedCommandsImpl) seedEquipment(ctx context.Context) error {
	items := []struct {
		name           string
		price          int64
		totalAvailable int
	}{
		{"Racket", 500, 20},
		{"Ball basket", 300, 10},
		{"Ball machine", 1500, 2},
	}

	for _, item := range items {
		entity, err := equipment.NewEquipment(item.name, item.price, item.totalAvailable)
		if err != nil {
			return err
		}
		if _, err := s.equipment.Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue
			}
			return err
		}
	}
	return nil
}

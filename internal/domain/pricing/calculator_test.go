//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saturday  = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC) // 土曜
	wednesday = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC) // 水曜
)

func seedRules() []pricing.Rule {
	return []pricing.Rule{
		{Type: pricing.RuleTypePeakHours, Enabled: true, Multiplier: 1.5, StartTime: "18:00", EndTime: "21:00", ApplyDays: "1,2,3,4,5"},
		{Type: pricing.RuleTypeWeekend, Enabled: true, Multiplier: 1.3},
		{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 1.2},
		{Type: pricing.RuleTypeMultipleHours, Enabled: true, Discount: 0.1},
		{Type: pricing.RuleTypeBundle, Enabled: true, Discount: 0.15, MinItems: 3},
	}
}

func coachPrice(p int64) *int64 {
	return &p
}

func TestCalculatorPrice(t *testing.T) {
	calc := pricing.NewCalculator()

	t.Run("全ルール無効なら素の合計", func(t *testing.T) {
		rules := pricing.NewRuleSet(nil)
		req := pricing.PriceRequest{
			BaseHourlyPrice: 600,
			Indoor:          true,
			Slot:            "19:00",
			Date:            saturday,
			Hours:           2,
			Equipment: []pricing.EquipmentSelection{
				{UnitPrice: 50, Quantity: 2},
				{UnitPrice: 30, Quantity: 1},
			},
			CoachPrice: coachPrice(500),
		}

		// 600*2 + (100 + 30) + 500
		assert.Equal(t, int64(1830), calc.Price(req, rules))
	})

	t.Run("決定性: 同じ入力は同じ出力", func(t *testing.T) {
		rules := pricing.NewRuleSet(seedRules())
		req := pricing.PriceRequest{
			BaseHourlyPrice: 600,
			Indoor:          true,
			Slot:            "19:00",
			Date:            wednesday,
			Hours:           3,
			Equipment:       []pricing.EquipmentSelection{{UnitPrice: 50, Quantity: 4}},
			CoachPrice:      coachPrice(500),
		}

		first := calc.Price(req, rules)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, calc.Price(req, rules))
		}
	})

	t.Run("仕様例: 土曜19時の室内コートは936", func(t *testing.T) {
		// peak_hours は apply_days=平日のみなので土曜には乗らない
		rules := pricing.NewRuleSet(seedRules())
		req := pricing.PriceRequest{
			BaseHourlyPrice: 600,
			Indoor:          true,
			Slot:            "19:00",
			Date:            saturday,
			Hours:           1,
		}

		// 600 * 1.2 (indoor) * 1.3 (weekend)
		assert.Equal(t, int64(936), calc.Price(req, rules))
	})

	t.Run("平日19時はピーク倍率が乗る", func(t *testing.T) {
		rules := pricing.NewRuleSet(seedRules())
		req := pricing.PriceRequest{
			BaseHourlyPrice: 600,
			Indoor:          true,
			Slot:            "19:00",
			Date:            wednesday,
			Hours:           1,
		}

		// 600 * 1.2 * 1.5
		assert.Equal(t, int64(1080), calc.Price(req, rules))
	})

	t.Run("ピーク窓は[start, end)の半開区間", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypePeakHours, Enabled: true, Multiplier: 2.0, StartTime: "18:00", EndTime: "21:00"},
		})

		base := pricing.PriceRequest{BaseHourlyPrice: 100, Date: wednesday, Hours: 1}

		atStart := base
		atStart.Slot = "18:00"
		assert.Equal(t, int64(200), calc.Price(atStart, rules))

		atEnd := base
		atEnd.Slot = "21:00"
		assert.Equal(t, int64(100), calc.Price(atEnd, rules))

		before := base
		before.Slot = "17:00"
		assert.Equal(t, int64(100), calc.Price(before, rules))
	})

	t.Run("indoorルールはコート料金のみに乗る", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 1.5},
		})
		req := pricing.PriceRequest{
			BaseHourlyPrice: 400,
			Indoor:          true,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           1,
			Equipment:       []pricing.EquipmentSelection{{UnitPrice: 100, Quantity: 2}},
			CoachPrice:      coachPrice(500),
		}

		// 400*1.5 + 200 + 500 — 機材とコーチは割増対象外
		assert.Equal(t, int64(1300), calc.Price(req, rules))

		outdoor := req
		outdoor.Indoor = false
		assert.Equal(t, int64(1100), calc.Price(outdoor, rules))
	})

	t.Run("multiple_hours割引でコート料金は負にならない", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeMultipleHours, Enabled: true, Discount: 0.5},
		})
		req := pricing.PriceRequest{
			BaseHourlyPrice: 600,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           4, // 1 - 0.5*3 = -0.5 → 0でクランプ
			CoachPrice:      coachPrice(500),
		}

		assert.Equal(t, int64(500), calc.Price(req, rules))
	})

	t.Run("multiple_hoursは1時間には適用されない", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeMultipleHours, Enabled: true, Discount: 0.1},
		})
		req := pricing.PriceRequest{BaseHourlyPrice: 600, Slot: "10:00", Date: wednesday, Hours: 1}

		assert.Equal(t, int64(600), calc.Price(req, rules))
	})

	t.Run("bundle割引は閾値ちょうどから適用", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeBundle, Enabled: true, Discount: 0.2, MinItems: 3},
		})
		base := pricing.PriceRequest{
			BaseHourlyPrice: 100,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           1,
		}

		below := base
		below.Equipment = []pricing.EquipmentSelection{{UnitPrice: 50, Quantity: 2}}
		assert.Equal(t, int64(200), calc.Price(below, rules), "min_items-1では割引なし")

		at := base
		at.Equipment = []pricing.EquipmentSelection{{UnitPrice: 50, Quantity: 3}}
		// 100 + 150*0.8
		assert.Equal(t, int64(220), calc.Price(at, rules))
	})

	t.Run("bundleの数量は明細合算で数える", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeBundle, Enabled: true, Discount: 0.5, MinItems: 3},
		})
		req := pricing.PriceRequest{
			BaseHourlyPrice: 100,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           1,
			Equipment: []pricing.EquipmentSelection{
				{UnitPrice: 50, Quantity: 2},
				{UnitPrice: 30, Quantity: 1},
			},
		}

		// 100 + (100+30)*0.5
		assert.Equal(t, int64(165), calc.Price(req, rules))
	})

	t.Run("bundle割引はコーチ料金に及ばない", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeBundle, Enabled: true, Discount: 1.0, MinItems: 1},
		})
		req := pricing.PriceRequest{
			BaseHourlyPrice: 100,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           1,
			Equipment:       []pricing.EquipmentSelection{{UnitPrice: 999, Quantity: 5}},
			CoachPrice:      coachPrice(500),
		}

		assert.Equal(t, int64(600), calc.Price(req, rules))
	})

	t.Run("端数は四捨五入", func(t *testing.T) {
		rules := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 1.15},
		})
		req := pricing.PriceRequest{
			BaseHourlyPrice: 333,
			Indoor:          true,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           1,
		}

		// 333 * 1.15 = 382.95 → 383
		assert.Equal(t, int64(383), calc.Price(req, rules))
	})

	t.Run("数量0以下の明細は無視", func(t *testing.T) {
		rules := pricing.NewRuleSet(nil)
		req := pricing.PriceRequest{
			BaseHourlyPrice: 100,
			Slot:            "10:00",
			Date:            wednesday,
			Hours:           1,
			Equipment: []pricing.EquipmentSelection{
				{UnitPrice: 50, Quantity: 0},
				{UnitPrice: 50, Quantity: -1},
				{UnitPrice: 50, Quantity: 1},
			},
		}

		assert.Equal(t, int64(150), calc.Price(req, rules))
	})
}

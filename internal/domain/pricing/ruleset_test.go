//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

// 不正なルール行は「無いもの」として扱われる: 計算自体は失敗しない
func TestRuleSetNormalization(t *testing.T) {
	calc := pricing.NewCalculator()
	weekday := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	plain := pricing.PriceRequest{
		BaseHourlyPrice: 100,
		Indoor:          true,
		Slot:            "19:00",
		Date:            weekday,
		Hours:           2,
		Equipment:       []pricing.EquipmentSelection{{UnitPrice: 10, Quantity: 5}},
	}

	cases := []struct {
		name  string
		rules []pricing.Rule
	}{
		{
			name: "倍率0以下のindoorは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 0},
			},
		},
		{
			name: "倍率が負のweekendは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypeWeekend, Enabled: true, Multiplier: -1.3},
			},
		},
		{
			name: "時間窓が壊れたpeak_hoursは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypePeakHours, Enabled: true, Multiplier: 1.5, StartTime: "25:00", EndTime: "99:99"},
			},
		},
		{
			name: "start >= end のpeak_hoursは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypePeakHours, Enabled: true, Multiplier: 1.5, StartTime: "21:00", EndTime: "18:00"},
			},
		},
		{
			name: "apply_daysが壊れたpeak_hoursは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypePeakHours, Enabled: true, Multiplier: 1.5, StartTime: "18:00", EndTime: "21:00", ApplyDays: "1,x,9"},
			},
		},
		{
			name: "割引率が1超のmultiple_hoursは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypeMultipleHours, Enabled: true, Discount: 1.5},
			},
		},
		{
			name: "割引率が負のbundleは無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypeBundle, Enabled: true, Discount: -0.15, MinItems: 3},
			},
		},
		{
			name: "enabled=falseの行は無効",
			rules: []pricing.Rule{
				{Type: pricing.RuleTypeIndoor, Enabled: false, Multiplier: 2.0},
				{Type: pricing.RuleTypeWeekend, Enabled: false, Multiplier: 2.0},
			},
		},
	}

	// 素の合計: 100*2 + 50
	const plainTotal = int64(250)

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rs := pricing.NewRuleSet(c.rules)
			assert.Equal(t, plainTotal, calc.Price(plain, rs))
		})
	}

	t.Run("同一タイプの重複は最初の有効行が勝つ", func(t *testing.T) {
		rs := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 2.0},
			{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 10.0},
		})
		assert.Equal(t, int64(450), calc.Price(plain, rs))
	})

	t.Run("bundleのmin_items未指定は3にフォールバック", func(t *testing.T) {
		rs := pricing.NewRuleSet([]pricing.Rule{
			{Type: pricing.RuleTypeBundle, Enabled: true, Discount: 0.5},
		})
		// 数量5 >= 3 → 機材50が25に
		assert.Equal(t, int64(225), calc.Price(plain, rs))
	})
}

func TestParseWeekdaySet(t *testing.T) {
	t.Run("平日セット", func(t *testing.T) {
		set, ok := pricing.ParseWeekdaySet("1,2,3,4,5")
		assert.True(t, ok)
		assert.True(t, set.Applies(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)))  // 水曜
		assert.False(t, set.Applies(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))) // 土曜
	})

	t.Run("空文字は全日適用", func(t *testing.T) {
		set, ok := pricing.ParseWeekdaySet("")
		assert.True(t, ok)
		assert.True(t, set.IsEmpty())
		assert.True(t, set.Applies(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("日曜はISOで7", func(t *testing.T) {
		set, ok := pricing.ParseWeekdaySet("7")
		assert.True(t, ok)
		assert.True(t, set.Applies(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))  // 日曜
		assert.False(t, set.Applies(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))) // 月曜
	})

	t.Run("範囲外や非数値は失敗", func(t *testing.T) {
		for _, s := range []string{"0", "8", "a", "1,,2"} {
			_, ok := pricing.ParseWeekdaySet(s)
			assert.False(t, ok, s)
		}
	})
}

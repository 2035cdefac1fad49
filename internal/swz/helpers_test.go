package swz

import (
	"strings"

	"github.com/veldran/powerdesk/internal/power"
)

// buildRow renders one data row with every cell at its canonical default,
// then applies overrides by column name.
func buildRow(overrides map[string]string) string {
	cells := make([]string, 0, len(power.Fields()))
	for _, spec := range power.Fields() {
		v, ok := overrides[spec.Name]
		if !ok {
			switch spec.Kind {
			case power.KindInt, power.KindScalar:
				v = "0"
			case power.KindFlag:
				v = "False"
			}
		}
		cells = append(cells, v)
	}
	return strings.Join(cells, ",")
}

// buildFile renders a whole stream: optional sentinel, canonical header,
// then the given rows.
func buildFile(sentinel bool, rows ...string) string {
	var b strings.Builder
	if sentinel {
		b.WriteString(power.SentinelLine)
		b.WriteString("\n")
	}
	b.WriteString(power.CanonicalHeader())
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// samplePowers returns the fixture pair shared by the write, round-trip,
// and golden tests.
func samplePowers() []power.Power {
	sword := power.Power{
		PowerName:               "FireSwordNSig1",
		PowerID:                 1700,
		OrderID:                 1,
		MissionTags:             "Sword",
		Priority:                10,
		CastSoundEvent:          "SwordSwing",
		HitSoundEvent:           "SwordHit",
		TargetMethod:            "Horizontal",
		ParentItem:              "Sword",
		IsSignature:             true,
		AoERadiusX:              9.5,
		AoERadiusY:              4,
		CenterOffsetX:           7.25,
		CastImpulseY:            -42.25,
		CastAnim:                "SwordNSig1",
		CastTime:                14,
		RecoverTime:             18,
		CooldownTime:            300,
		BaseDamage:              13,
		VariableImpulse:         40,
		FixedImpulse:            65.5,
		PostHitDamageMultiplier: 0.75,
		ComboName:               "FireSwordNSig1B",
		CastGfxAnimFile:         "Animation_Sword.swf",
		CastGfxAnimClass:        "a__SwordCastFX",
		CastGfxAnimScale:        1.25,
		CastGfxTint:             16724736,
		HitGfxFireAndForget:     true,
	}
	gust := power.Power{
		PowerName:          "GustUp",
		PowerID:            1701,
		OrderID:            2,
		HitSoundEvent:      "WindHit",
		TargetMethod:       "Radius",
		IsAirPower:         true,
		AoERadiusX:         12,
		AoERadiusY:         12,
		CancelGravity:      true,
		AllowMove:          true,
		CastTime:           9,
		FixedRecoverTime:   6,
		RecoverTime:        16,
		BaseDamage:         5,
		VariableImpulse:    78,
		MinimumImpulse:     30,
		AcceptInput:        "Heavy",
		DIMaxAngle:         20,
		IsMultihit:         true,
		MinTimeBetweenHits: 8,
	}
	return []power.Power{sword, gust}
}

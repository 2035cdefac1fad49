package power

// Power is one row of a powerTypes file. Struct field order is the
// canonical column order; csv tags carry the on-disk column names.
//
// Zero values are the documented defaults for every column, so a Power
// literal only needs to set the cells a row actually uses.
type Power struct {
	// Identity and ordering.
	PowerName   string `csv:"PowerName"`
	PowerID     Int    `csv:"PowerID"`
	OrderID     Int    `csv:"OrderID"`
	DevNotes    string `csv:"DevNotes"`
	MissionTags string `csv:"MissionTags"`
	Priority    Int    `csv:"Priority"`

	// Audio and targeting.
	CastSoundEvent    string `csv:"CastSoundEvent"`
	HitSoundEvent     string `csv:"HitSoundEvent"`
	ItemHitSoundEvent string `csv:"ItemHitSoundEvent"`
	TargetMethod      Enum   `csv:"TargetMethod"`
	ParentItem        string `csv:"ParentItem"`
	OriginPower       string `csv:"OriginPower"`

	// Mode flags.
	IsAirPower       Flag `csv:"IsAirPower"`
	IsSignature      Flag `csv:"IsSignature"`
	IsAntiair        Flag `csv:"IsAntiair"`
	SigModeSwapsMove Flag `csv:"SigModeSwapsMove"`

	// Area of effect and cast-time impulse tuning.
	AoERadiusX               Scalar `csv:"AoERadiusX"`
	AoERadiusY               Scalar `csv:"AoERadiusY"`
	CenterOffsetX            Scalar `csv:"CenterOffsetX"`
	CenterOffsetY            Scalar `csv:"CenterOffsetY"`
	CastImpulseX             Scalar `csv:"CastImpulseX"`
	CastImpulseY             Scalar `csv:"CastImpulseY"`
	FireImpulseX             Scalar `csv:"FireImpulseX"`
	FireImpulseY             Scalar `csv:"FireImpulseY"`
	FireImpulseMaxX          Scalar `csv:"FireImpulseMaxX"`
	ImpulseMaxOnDCOnly       Flag   `csv:"ImpulseMaxOnDCOnly"`
	SpeedLimit               Scalar `csv:"SpeedLimit"`
	SpeedLimitY              Scalar `csv:"SpeedLimitY"`
	SpeedLimitAttack         Scalar `csv:"SpeedLimitAttack"`
	SpeedLimitBackward       Scalar `csv:"SpeedLimitBackward"`
	SpeedLimitAttackBackward Scalar `csv:"SpeedLimitAttackBackward"`

	// Movement rules while the power is active.
	SelfImpulseOnHit             Scalar `csv:"SelfImpulseOnHit"`
	EndOnHit                     Flag   `csv:"EndOnHit"`
	CancelGravity                Flag   `csv:"CancelGravity"`
	WallCancel                   Flag   `csv:"WallCancel"`
	AllowMove                    Flag   `csv:"AllowMove"`
	AllowRecoverMove             Flag   `csv:"AllowRecoverMove"`
	AllowJumpDuringRecover       Flag   `csv:"AllowJumpDuringRecover"`
	AllowLeaveGround             Flag   `csv:"AllowLeaveGround"`
	AllowHitOnZeroDamage         Flag   `csv:"AllowHitOnZeroDamage"`
	AccelMult                    Scalar `csv:"AccelMult"`
	BackwardAccelMult            Scalar `csv:"BackwardAccelMult"`
	TurnOffDampening             Flag   `csv:"TurnOffDampening"`
	KeepGroundFriction           Flag   `csv:"KeepGroundFriction"`
	IgnoreGroundRestrict         Flag   `csv:"IgnoreGroundRestrict"`
	DoNotBounceOffNoSlideCeiling Flag   `csv:"DoNotBounceOffNoSlideCeiling"`
	NoSlideCeilingBuffer         Scalar `csv:"NoSlideCeilingBuffer"`

	// Animation and frame timing.
	CastAnim             string `csv:"CastAnim"`
	Hurtbox              string `csv:"Hurtbox"`
	CastTime             Int    `csv:"CastTime"`
	FixedRecoverTime     Int    `csv:"FixedRecoverTime"`
	RecoverTime          Int    `csv:"RecoverTime"`
	AntigravTime         Int    `csv:"AntigravTime"`
	GCancelTime          Int    `csv:"GCancelTime"`
	IgnoreForcedFallTime Int    `csv:"IgnoreForcedFallTime"`
	ShowCloudTime        Int    `csv:"ShowCloudTime"`
	CooldownTime         Int    `csv:"CooldownTime"`
	IgnoreCDOverride     Flag   `csv:"IgnoreCDOverride"`
	OnHitCooldownTime    Int    `csv:"OnHitCooldownTime"`
	ShakeTime            Int    `csv:"ShakeTime"`
	DisableShake         Flag   `csv:"DisableShake"`
	OnlyShakeOnce        Flag   `csv:"OnlyShakeOnce"`
	ShakeAllCams         Flag   `csv:"ShakeAllCams"`
	FixedMinChargeTime   Int    `csv:"FixedMinChargeTime"`
	MinCancelTime        Int    `csv:"MinCancelTime"`
	LoseInvulnTime       Int    `csv:"LoseInvulnTime"`

	// Damage and hit impulse.
	BaseDamage               Int    `csv:"BaseDamage"`
	VariableImpulse          Scalar `csv:"VariableImpulse"`
	FixedImpulse             Scalar `csv:"FixedImpulse"`
	MinimumImpulse           Scalar `csv:"MinimumImpulse"`
	PostHitDamageMultiplier  Scalar `csv:"PostHitDamageMultiplier"`
	PostHitImpulseMultiplier Scalar `csv:"PostHitImpulseMultiplier"`
	ImpulseOffsetX           Scalar `csv:"ImpulseOffsetX"`
	ImpulseOffsetY           Scalar `csv:"ImpulseOffsetY"`
	ImpulseOffsetMaxX        Scalar `csv:"ImpulseOffsetMaxX"`
	ImpulseToPoint           Flag   `csv:"ImpulseToPoint"`
	ToPointChangeX           Scalar `csv:"ToPointChangeX"`
	ToPointChangeY           Scalar `csv:"ToPointChangeY"`
	ToPointChangeDmg         Int    `csv:"ToPointChangeDmg"`
	LockTo45Degrees          Flag   `csv:"LockTo45Degrees"`
	DownwardForceMult        Scalar `csv:"DownwardForceMult"`
	MirrorImpulseOffset      Flag   `csv:"MirrorImpulseOffset"`
	MirrorOffsetCenter       Flag   `csv:"MirrorOffsetCenter"`
	IgnoreStrength           Flag   `csv:"IgnoreStrength"`

	// Input handling and held-item behavior.
	AcceptInput       Enum   `csv:"AcceptInput"`
	HeldDirOffsets    string `csv:"HeldDirOffsets"`
	DIMaxAngle        Int    `csv:"DIMaxAngle"`
	ImpulseOnHeavy    Scalar `csv:"ImpulseOnHeavy"`
	ItemSpeedDamage   Scalar `csv:"ItemSpeedDamage"`
	ItemSpeedImpulse  Scalar `csv:"ItemSpeedImpulse"`
	ItemHitElasticity Scalar `csv:"ItemHitElasticity"`
	AirTimeMultOnly   Flag   `csv:"AirTimeMultOnly"`

	// Multihit and assist rules.
	IsMultihit         Flag `csv:"IsMultihit"`
	MinTimeBetweenHits Int  `csv:"MinTimeBetweenHits"`
	InheritAlreadyHit  Flag `csv:"InheritAlreadyHit"`
	InterruptThreshold Int  `csv:"InterruptThreshold"`
	CanDamageEveryone  Flag `csv:"CanDamageEveryone"`
	CanAssist          Flag `csv:"CanAssist"`
	ConsumesWeapon     Flag `csv:"ConsumesWeapon"`

	// Grab and hold behavior.
	FixedStunTime       Int    `csv:"FixedStunTime"`
	HoldHitEnts         Flag   `csv:"HoldHitEnts"`
	HoldOffsetX         Scalar `csv:"HoldOffsetX"`
	HoldOffsetY         Scalar `csv:"HoldOffsetY"`
	UpdateHeldEnts      Flag   `csv:"UpdateHeldEnts"`
	DestroysItemOnHit   Flag   `csv:"DestroysItemOnHit"`
	GrabInterpolateTime Int    `csv:"GrabInterpolateTime"`
	GrabAnim            string `csv:"GrabAnim"`
	GrabAnimSpeed       Scalar `csv:"GrabAnimSpeed"`
	GrabForceUpdate     Flag   `csv:"GrabForceUpdate"`
	Uninterruptable     Flag   `csv:"Uninterruptable"`
	CanChangeDirection  Flag   `csv:"CanChangeDirection"`

	// Combo chaining.
	ComboName                string `csv:"ComboName"`
	ComboOverrideIfHit       string `csv:"ComboOverrideIfHit"`
	ComboOverrideIfRelease   string `csv:"ComboOverrideIfRelease"`
	ComboOverrideIfWall      string `csv:"ComboOverrideIfWall"`
	ComboOverrideIfButton    string `csv:"ComboOverrideIfButton"`
	OriginOverrideIfInMode   string `csv:"OriginOverrideIfInMode"`
	ComboOverrideIfDir       string `csv:"ComboOverrideIfDir"`
	ComboOverrideIfInterrupt string `csv:"ComboOverrideIfInterrupt"`
	IgnoreButtonOnHit        Flag   `csv:"IgnoreButtonOnHit"`
	IgnoreButtonOnMiss       Flag   `csv:"IgnoreButtonOnMiss"`
	ComboUseSameTargetPos    Flag   `csv:"ComboUseSameTargetPos"`
	UseCollisionAsTargetPos  Flag   `csv:"UseCollisionAsTargetPos"`
	ComboUseTargetAsSource   Flag   `csv:"ComboUseTargetAsSource"`
	ComboUseSameSourcePos    Flag   `csv:"ComboUseSameSourcePos"`

	// Background casts and alternate versions.
	BGPowerOnFire           string `csv:"BGPowerOnFire"`
	BGCastIdx               Int    `csv:"BGCastIdx"`
	AllowBGInterrupt        Flag   `csv:"AllowBGInterrupt"`
	PopulateActivePowerHits Flag   `csv:"PopulateActivePowerHits"`
	PopulateBGHits          Flag   `csv:"PopulateBGHits"`
	ExhaustedVersion        string `csv:"ExhaustedVersion"`
	GCVersion               string `csv:"GCVersion"`
	MomentumVersion         string `csv:"MomentumVersion"`
	TeamTauntPower          Flag   `csv:"TeamTauntPower"`

	// Cast visuals.
	AnimLayer                 Int    `csv:"AnimLayer"`
	FXLayer                   Int    `csv:"FXLayer"`
	IsWorldCastGfx            Flag   `csv:"IsWorldCastGfx"`
	CustomArtCastGfx          string `csv:"CustomArtCastGfx"`
	DelayCastGfxToFirstFire   Flag   `csv:"DelayCastGfxToFirstFire"`
	DelayCastGFXCleanUp       Flag   `csv:"DelayCastGFXCleanUp"`
	CastAnimSource            Enum   `csv:"CastAnimSource"`
	DoNotSendSync             Flag   `csv:"DoNotSendSync"`
	IsThrow                   Flag   `csv:"IsThrow"`
	CannotAttackAroundCorners Flag   `csv:"CannotAttackAroundCorners"`
	ForceHitThroughSoftPlat   Flag   `csv:"ForceHitThroughSoftPlat"`
	ForceFaceRight            Flag   `csv:"ForceFaceRight"`
	CollisionPowerOffSetX     Scalar `csv:"CollisionPowerOffSetX"`
	CollisionPowerOffSetY     Scalar `csv:"CollisionPowerOffSetY"`
	CastGfxAnimFile           string `csv:"CastGfx.AnimFile"`
	CastGfxAnimClass          string `csv:"CastGfx.AnimClass"`
	CastGfxAnimScale          Scalar `csv:"CastGfx.AnimScale"`
	CastGfxFireAndForget      Flag   `csv:"CastGfx.FireAndForget"`
	CastGfxMoveAnimSpeed      Scalar `csv:"CastGfx.MoveAnimSpeed"`
	CastGfxFlipAnim           Flag   `csv:"CastGfx.FlipAnim"`
	CastGfxTint               Int    `csv:"CastGfx.Tint"`
	CastGfxRotation           Int    `csv:"CastGfxRotation"`

	// Fire visuals.
	IsWorldFireGfx       Flag   `csv:"IsWorldFireGfx"`
	IsAttackFireGfx      Flag   `csv:"IsAttackFireGfx"`
	CustomArtFireGfx     string `csv:"CustomArtFireGfx"`
	FireAnimSource       Enum   `csv:"FireAnimSource"`
	FireGfxAnimFile      string `csv:"FireGfx.AnimFile"`
	FireGfxAnimClass     string `csv:"FireGfx.AnimClass"`
	FireGfxAnimScale     Scalar `csv:"FireGfx.AnimScale"`
	FireGfxFireAndForget Flag   `csv:"FireGfx.FireAndForget"`
	FireGfxMoveAnimSpeed Scalar `csv:"FireGfx.MoveAnimSpeed"`
	FireGfxFlipAnim      Flag   `csv:"FireGfx.FlipAnim"`
	FireGfxTint          Int    `csv:"FireGfx.Tint"`
	FireGfxRotation      Int    `csv:"FireGfxRotation"`

	// Hit visuals.
	IsWorldHitGfx       Flag   `csv:"IsWorldHitGfx"`
	OnlyOnceHitGfx      Flag   `csv:"OnlyOnceHitGfx"`
	OwnerFacingHitGfx   Flag   `csv:"OwnerFacingHitGfx"`
	PlayHitGfxBehind    Flag   `csv:"PlayHitGfxBehind"`
	HitAnimSource       Enum   `csv:"HitAnimSource"`
	HitReactAnim        string `csv:"HitReactAnim"`
	HitGfxAnimFile      string `csv:"HitGfx.AnimFile"`
	HitGfxAnimClass     string `csv:"HitGfx.AnimClass"`
	HitGfxAnimScale     Scalar `csv:"HitGfx.AnimScale"`
	HitGfxFireAndForget Flag   `csv:"HitGfx.FireAndForget"`
	HitGfxTint          Int    `csv:"HitGfx.Tint"`
}

package physics

// Flag records which collision surfaces and tile effects an entity touched
// during the current tick. It is cleared at the start of every
// TickMapCollisions call and bits are only ever set afterwards.
type Flag uint32

const (
	FlagHitLeftWall        Flag = 1 << iota // 0x01
	FlagHitTopWall                          // 0x02
	FlagHitRightWall                        // 0x04
	FlagHitBottomWall                       // 0x08
	FlagHitRightSlope                       // 0x10
	FlagHitLeftSlope                        // 0x20
	FlagHitUpperRightSlope                  // 0x40
	FlagHitUpperLeftSlope                   // 0x80
	FlagInWater                             // 0x100
	FlagWeaponHitBlock                      // 0x200
	FlagHitBySpike                          // 0x400
	FlagBloodyDroplets                      // 0x800
	FlagForceLeft                           // 0x1000
	FlagForceUp                             // 0x2000
	FlagForceRight                          // 0x4000
	FlagForceDown                           // 0x8000
	FlagHitLeftHigherHalf                   // 0x10000
	FlagHitLeftLowerHalf                    // 0x20000
	FlagHitRightLowerHalf                   // 0x40000
	FlagHitRightHigherHalf                  // 0x80000
)

// FlagAnyWall is set when any of the four wall bits is.
const FlagAnyWall = FlagHitLeftWall | FlagHitTopWall | FlagHitRightWall | FlagHitBottomWall

// Has reports whether every bit in mask is set.
func (f Flag) Has(mask Flag) bool {
	return f&mask == mask
}

// Any reports whether at least one bit in mask is set.
func (f Flag) Any(mask Flag) bool {
	return f&mask != 0
}

// Set ORs mask into the bitset.
func (f *Flag) Set(mask Flag) {
	*f |= mask
}

// Reset clears every bit.
func (f *Flag) Reset() {
	*f = 0
}

func (f Flag) HitLeftWall() bool        { return f.Has(FlagHitLeftWall) }
func (f Flag) HitTopWall() bool         { return f.Has(FlagHitTopWall) }
func (f Flag) HitRightWall() bool       { return f.Has(FlagHitRightWall) }
func (f Flag) HitBottomWall() bool      { return f.Has(FlagHitBottomWall) }
func (f Flag) HitRightSlope() bool      { return f.Has(FlagHitRightSlope) }
func (f Flag) HitLeftSlope() bool       { return f.Has(FlagHitLeftSlope) }
func (f Flag) HitUpperRightSlope() bool { return f.Has(FlagHitUpperRightSlope) }
func (f Flag) HitUpperLeftSlope() bool  { return f.Has(FlagHitUpperLeftSlope) }
func (f Flag) InWater() bool            { return f.Has(FlagInWater) }
func (f Flag) WeaponHitBlock() bool     { return f.Has(FlagWeaponHitBlock) }
func (f Flag) HitBySpike() bool         { return f.Has(FlagHitBySpike) }
func (f Flag) BloodyDroplets() bool     { return f.Has(FlagBloodyDroplets) }
func (f Flag) ForceLeft() bool          { return f.Has(FlagForceLeft) }
func (f Flag) ForceUp() bool            { return f.Has(FlagForceUp) }
func (f Flag) ForceRight() bool         { return f.Has(FlagForceRight) }
func (f Flag) ForceDown() bool          { return f.Has(FlagForceDown) }
func (f Flag) HitLeftHigherHalf() bool  { return f.Has(FlagHitLeftHigherHalf) }
func (f Flag) HitLeftLowerHalf() bool   { return f.Has(FlagHitLeftLowerHalf) }
func (f Flag) HitRightLowerHalf() bool  { return f.Has(FlagHitRightLowerHalf) }
func (f Flag) HitRightHigherHalf() bool { return f.Has(FlagHitRightHigherHalf) }

func (f *Flag) SetHitLeftWall()        { f.Set(FlagHitLeftWall) }
func (f *Flag) SetHitTopWall()         { f.Set(FlagHitTopWall) }
func (f *Flag) SetHitRightWall()       { f.Set(FlagHitRightWall) }
func (f *Flag) SetHitBottomWall()      { f.Set(FlagHitBottomWall) }
func (f *Flag) SetHitRightSlope()      { f.Set(FlagHitRightSlope) }
func (f *Flag) SetHitLeftSlope()       { f.Set(FlagHitLeftSlope) }
func (f *Flag) SetHitUpperRightSlope() { f.Set(FlagHitUpperRightSlope) }
func (f *Flag) SetHitUpperLeftSlope()  { f.Set(FlagHitUpperLeftSlope) }
func (f *Flag) SetInWater()            { f.Set(FlagInWater) }
func (f *Flag) SetWeaponHitBlock()     { f.Set(FlagWeaponHitBlock) }
func (f *Flag) SetHitBySpike()         { f.Set(FlagHitBySpike) }
func (f *Flag) SetBloodyDroplets()     { f.Set(FlagBloodyDroplets) }
func (f *Flag) SetForceLeft()          { f.Set(FlagForceLeft) }
func (f *Flag) SetForceUp()            { f.Set(FlagForceUp) }
func (f *Flag) SetForceRight()         { f.Set(FlagForceRight) }
func (f *Flag) SetForceDown()          { f.Set(FlagForceDown) }
func (f *Flag) SetHitLeftHigherHalf()  { f.Set(FlagHitLeftHigherHalf) }
func (f *Flag) SetHitLeftLowerHalf()   { f.Set(FlagHitLeftLowerHalf) }
func (f *Flag) SetHitRightLowerHalf()  { f.Set(FlagHitRightLowerHalf) }
func (f *Flag) SetHitRightHigherHalf() { f.Set(FlagHitRightHigherHalf) }

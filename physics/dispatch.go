package physics

// Attribute bytes with a meaning to the collision engine. Bit 0x20 layered
// onto a slope or force code marks the tile as also submerged.
const (
	AttrWater          uint8 = 0x02
	AttrNPCSolid       uint8 = 0x03
	AttrNPCWaterSolid  uint8 = 0x04
	AttrSolidShootable uint8 = 0x05
	AttrSolid          uint8 = 0x41
	AttrSpike          uint8 = 0x42
	AttrBreakable      uint8 = 0x43
	AttrTile44         uint8 = 0x44
	AttrPlayerSolid    uint8 = 0x46
	AttrPlatform       uint8 = 0x4a
	AttrSlopeBase      uint8 = 0x50
	AttrWaterBack      uint8 = 0x60
	AttrWaterSolid     uint8 = 0x61
	AttrWaterSpike     uint8 = 0x62
	AttrWaterNPCSolid  uint8 = 0x64
	AttrForceBase      uint8 = 0x80

	AttrSubmerged uint8 = 0x20
)

type resolverKind uint8

const (
	resolveNone resolverKind = iota
	resolveWater
	resolveSpike
	resolveBlock
	resolveBlockWater
	resolveBlock44
	resolvePlatform
	resolveSlope
	resolveForce
)

type audience uint8

const (
	forAny audience = iota
	forPlayer
	forNonPlayer
)

// dispatchEntry is what a single attribute byte does for one kind of entity.
type dispatchEntry struct {
	kind  resolverKind
	slope SlopeShape
	dir   Direction
	water bool
}

// dispatchRule maps a set of attribute codes to a behaviour. Rules are
// applied in order and the first rule to claim an (audience, code) slot wins,
// which reproduces the priority of the legacy match arms.
type dispatchRule struct {
	who   audience
	codes []uint8
	entry dispatchEntry
}

func slopeRule(code uint8, shape SlopeShape) []dispatchRule {
	return []dispatchRule{
		{forAny, []uint8{code}, dispatchEntry{kind: resolveSlope, slope: shape}},
		{forAny, []uint8{code | AttrSubmerged}, dispatchEntry{kind: resolveSlope, slope: shape, water: true}},
	}
}

func forceRule(code uint8, dir Direction) []dispatchRule {
	return []dispatchRule{
		{forAny, []uint8{code}, dispatchEntry{kind: resolveForce, dir: dir}},
		{forAny, []uint8{code | AttrSubmerged}, dispatchEntry{kind: resolveForce, dir: dir, water: true}},
	}
}

func dispatchRules() []dispatchRule {
	rules := []dispatchRule{
		{forPlayer, []uint8{AttrWaterSpike}, dispatchEntry{kind: resolveSpike, water: true}},
		{forPlayer, []uint8{AttrSpike}, dispatchEntry{kind: resolveSpike}},
		{forAny, []uint8{AttrWater, AttrWaterBack}, dispatchEntry{kind: resolveWater}},
		{forNonPlayer, []uint8{AttrWaterSpike}, dispatchEntry{kind: resolveWater}},
		{forAny, []uint8{AttrWaterSolid}, dispatchEntry{kind: resolveBlockWater}},
		{forNonPlayer, []uint8{AttrNPCWaterSolid, AttrWaterNPCSolid}, dispatchEntry{kind: resolveBlockWater}},
		{forPlayer, []uint8{AttrSolidShootable, AttrSolid, AttrBreakable, AttrPlayerSolid}, dispatchEntry{kind: resolveBlock}},
		{forNonPlayer, []uint8{AttrNPCSolid, AttrSolidShootable, AttrSolid, AttrBreakable}, dispatchEntry{kind: resolveBlock}},
		{forAny, []uint8{AttrTile44}, dispatchEntry{kind: resolveBlock44}},
		{forAny, []uint8{AttrPlatform}, dispatchEntry{kind: resolvePlatform}},
	}

	for i, shape := range []SlopeShape{
		SlopeUpperLeftHigh, SlopeUpperLeftLow, SlopeUpperRightLow, SlopeUpperRightHigh,
		SlopeLowerLeftHigh, SlopeLowerLeftLow, SlopeLowerRightLow, SlopeLowerRightHigh,
	} {
		rules = append(rules, slopeRule(AttrSlopeBase+uint8(i), shape)...)
	}
	for i, shape := range []SlopeShape{SlopeUpperLeft, SlopeUpperRight, SlopeLowerLeft, SlopeLowerRight} {
		rules = append(rules, slopeRule(AttrSlopeBase+0x0a+uint8(i), shape)...)
	}
	for i, dir := range []Direction{DirectionLeft, DirectionUp, DirectionRight, DirectionBottom} {
		rules = append(rules, forceRule(AttrForceBase+uint8(i), dir)...)
	}

	return rules
}

// dispatchTable is indexed by [isPlayer][attribute]. Codes no rule claims stay
// resolveNone.
var dispatchTable = buildDispatchTable(dispatchRules())

func buildDispatchTable(rules []dispatchRule) [2][256]dispatchEntry {
	var table [2][256]dispatchEntry
	var claimed [2][256]bool

	for _, r := range rules {
		for player := 0; player < 2; player++ {
			if (r.who == forPlayer && player == 0) || (r.who == forNonPlayer && player == 1) {
				continue
			}
			for _, code := range r.codes {
				if claimed[player][code] {
					continue
				}
				claimed[player][code] = true
				table[player][code] = r.entry
			}
		}
	}

	return table
}

func lookupDispatch(attrib uint8, isPlayer bool) dispatchEntry {
	if isPlayer {
		return dispatchTable[1][attrib]
	}
	return dispatchTable[0][attrib]
}

// resolve runs the resolver selected for attrib against tile (tx, ty).
func resolve(st *State, e PhysicalEntity, d dispatchEntry, tx, ty int32) {
	switch d.kind {
	case resolveWater:
		testHitWater(st, e, tx, ty)
	case resolveSpike:
		testHitSpike(st, e, tx, ty, d.water)
	case resolveBlock:
		testBlockHit(st, e, tx, ty)
	case resolveBlockWater:
		testBlockHit(st, e, tx, ty)
		testHitWater(st, e, tx, ty)
	case resolveBlock44:
		if !ignoresTile44(e) {
			testBlockHit(st, e, tx, ty)
		}
	case resolvePlatform:
		testPlatformHit(st, e, tx, ty)
	case resolveSlope:
		testSlopeHit(st, e, d.slope, tx, ty)
		if d.water {
			testHitWater(st, e, tx, ty)
		}
	case resolveForce:
		if e.IsPlayer() {
			testHitForce(st, e, tx, ty, d.dir, d.water)
		} else {
			// Non-player entities ride conveyors anywhere in the scan area.
			setForce(e.Flags(), d.dir, d.water)
		}
	}
}

package physics

// Condition is the entity state bitset consulted by the resolvers. Only a
// couple of bits matter to collision; the rest belong to entity logic.
type Condition uint16

const (
	CondInteracted Condition = 1 << iota
	CondHidden
	CondDamageBoss
	CondDrsBoss
	CondDrsNoDrop
	CondExplodeDie
	CondShowDamage
	CondAlive
)

func (c Condition) Hidden() bool { return c&CondHidden != 0 }
func (c Condition) Alive() bool  { return c&CondAlive != 0 }

func (c *Condition) SetHidden(v bool) { c.set(CondHidden, v) }
func (c *Condition) SetAlive(v bool)  { c.set(CondAlive, v) }

func (c *Condition) set(mask Condition, v bool) {
	if v {
		*c |= mask
	} else {
		*c &^= mask
	}
}

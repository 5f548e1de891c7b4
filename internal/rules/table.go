package rules

import (
	"fmt"

	"github.com/KirkDiggler/nexus-classes/internal/domain/classes"
	"github.com/KirkDiggler/nexus-classes/internal/domain/world"
	"github.com/KirkDiggler/nexus-classes/internal/events"
	"github.com/KirkDiggler/nexus-classes/internal/markeditems"
)

// Rule ids
const (
	BuilderNoFallDamage   = "builder.no_fall_damage"
	BuilderTransmute      = "builder.transmute"
	BuilderItemMisuse     = "builder.item_misuse"
	MinerBonusEmerald     = "miner.bonus_emerald"
	MinerZombieWeakness   = "miner.zombie_weakness"
	WarriorFireAspect     = "warrior.fire_aspect"
	WarriorFireResistance = "warrior.fire_resistance"
	ArtistFreePearl       = "artist.free_pearl"
	ArtistItemMisuse      = "artist.item_misuse"
	ItemDropGuard         = "item.drop_guard"
	ItemTransferGuard     = "item.transfer_guard"
	ItemDragGuard         = "item.drag_guard"
)

const (
	transmuteParticleCount = 32
	transmuteParticle      = "block_dust"
	artistPearlTopUp       = 2
	zombieDamageMultiplier = 2
)

var (
	bonusEmeraldOres = map[world.Material]bool{
		world.MaterialGoldOre:     true,
		world.MaterialLapisOre:    true,
		world.MaterialRedstoneOre: true,
		world.MaterialIronOre:     true,
	}

	fireCauses = map[world.DamageCause]bool{
		world.DamageFire:     true,
		world.DamageFireTick: true,
		world.DamageLava:     true,
	}

	damageTriggers = []events.EventType{events.EventTypeDamage, events.EventTypeDamageByActor}
)

// Table returns the built-in rule table. Protection rules come first and
// are never region gated.
func Table() []*Rule {
	return []*Rule{
		{
			ID:       ItemDropGuard,
			Kind:     KindProtection,
			Triggers: []events.EventType{events.EventTypeDropItem},
			Class:    AnyClass(),
			Subject:  actorID,
			Apply:    applyDropGuard,
		},
		{
			ID:       ItemTransferGuard,
			Kind:     KindProtection,
			Triggers: []events.EventType{events.EventTypeInventoryTransfer},
			Class:    AnyClass(),
			Subject:  actorID,
			Apply:    applyTransferGuard,
		},
		{
			ID:       ItemDragGuard,
			Kind:     KindProtection,
			Triggers: []events.EventType{events.EventTypeInventoryDrag},
			Class:    AnyClass(),
			Subject:  actorID,
			Apply:    applyDragGuard,
		},
		{
			ID:       BuilderItemMisuse,
			Kind:     KindProtection,
			Triggers: []events.EventType{events.EventTypeInteract},
			Class:    Except(classes.Builder),
			Subject:  actorID,
			Apply:    applyBuilderItemMisuse,
		},
		{
			ID:       ArtistItemMisuse,
			Kind:     KindProtection,
			Triggers: []events.EventType{events.EventTypeInteract},
			Class:    Except(classes.Artist),
			Subject:  actorID,
			Apply:    applyArtistItemMisuse,
		},
		{
			ID:          BuilderNoFallDamage,
			Kind:        KindPerk,
			Triggers:    damageTriggers,
			Class:       Only(classes.Builder),
			RegionGated: true,
			Subject:     damageTargetID,
			Apply:       applyBuilderNoFallDamage,
		},
		{
			ID:          BuilderTransmute,
			Kind:        KindPerk,
			Triggers:    []events.EventType{events.EventTypeInteract},
			Class:       Only(classes.Builder),
			RegionGated: true,
			Subject:     actorID,
			Apply:       applyBuilderTransmute,
		},
		{
			ID:          MinerBonusEmerald,
			Kind:        KindPerk,
			Triggers:    []events.EventType{events.EventTypeBlockBreak},
			Class:       Only(classes.Miner),
			RegionGated: true,
			Subject:     actorID,
			Apply:       applyMinerBonusEmerald,
		},
		{
			ID:          MinerZombieWeakness,
			Kind:        KindWeakness,
			Triggers:    []events.EventType{events.EventTypeDamageByActor},
			Class:       Only(classes.Miner),
			RegionGated: true,
			Subject:     damageTargetID,
			Apply:       applyMinerZombieWeakness,
		},
		{
			ID:          WarriorFireAspect,
			Kind:        KindPerk,
			Triggers:    []events.EventType{events.EventTypeDamageByActor},
			Class:       Only(classes.Warrior),
			RegionGated: true,
			Subject:     damageActorID,
			Apply:       applyWarriorFireAspect,
		},
		{
			ID:          WarriorFireResistance,
			Kind:        KindPerk,
			Triggers:    damageTriggers,
			Class:       Only(classes.Warrior),
			RegionGated: true,
			Subject:     damageTargetID,
			Apply:       applyWarriorFireResistance,
		},
		{
			ID:          ArtistFreePearl,
			Kind:        KindPerk,
			Triggers:    []events.EventType{events.EventTypeInteract},
			Class:       Only(classes.Artist),
			RegionGated: true,
			Subject:     actorID,
			Apply:       applyArtistFreePearl,
		},
	}
}

// Subjects

func actorID(event events.Event) string {
	var actor *world.Participant
	switch e := event.(type) {
	case *events.InteractEvent:
		actor = e.Actor
	case *events.BlockBreakEvent:
		actor = e.Actor
	case *events.DropItemEvent:
		actor = e.Actor
	case *events.InventoryTransferEvent:
		actor = e.Actor
	case *events.InventoryDragEvent:
		actor = e.Actor
	}
	if actor == nil {
		return ""
	}
	return actor.ID
}

func damageTargetID(event events.Event) string {
	carrier, ok := event.(events.DamageCarrier)
	if !ok {
		return ""
	}
	return participantID(carrier.Damaged().Target)
}

func damageActorID(event events.Event) string {
	e, ok := event.(*events.DamageByActorEvent)
	if !ok {
		return ""
	}
	return participantID(e.Actor)
}

func participantID(entity *world.Entity) string {
	if entity == nil || entity.Participant == nil {
		return ""
	}
	return entity.Participant.ID
}

// Protection

func applyDropGuard(e *Engine, event events.Event, subject string) bool {
	drop := event.(*events.DropItemEvent)
	switch e.items.OnDropAttempt(drop.Actor, drop.Item) {
	case markeditems.Deny:
		drop.Cancel()
		e.feedback.Debug(e.host, subject, "drop of %s denied: class items cannot be discarded", drop.Item.Material)
		return true
	case markeditems.Destroy:
		drop.RemoveDropped = true
		e.feedback.Debug(e.host, subject, "dropped %s destroyed: it belongs to another class", drop.Item.Material)
		return true
	}
	return false
}

func applyTransferGuard(e *Engine, event events.Event, subject string) bool {
	move := event.(*events.InventoryTransferEvent)
	own := move.DestOwner != "" && move.DestOwner == subject
	if e.items.OnTransferAttempt(move.Actor, move.Item, own) != markeditems.Deny {
		return false
	}
	move.Cancel()
	e.feedback.Debug(e.host, subject, "transfer of %s denied", move.Item.Material)
	return true
}

func applyDragGuard(e *Engine, event events.Event, subject string) bool {
	drag := event.(*events.InventoryDragEvent)
	own := drag.DestOwner != "" && drag.DestOwner == subject
	if e.items.OnDragAttempt(drag.Actor, drag.Item, own) != markeditems.Deny {
		return false
	}
	drag.Cancel()
	e.feedback.Debug(e.host, subject, "drag of %s denied", drag.Item.Material)
	return true
}

func applyBuilderItemMisuse(e *Engine, event events.Event, subject string) bool {
	interact := event.(*events.InteractEvent)
	held := transmuteItem(interact)
	if held == nil {
		return false
	}
	held.Amount--
	e.feedback.Debug(e.host, subject, "Builder class item consumed: only Builders can transmute")
	return true
}

// Artist misuse is checked regardless of cooldown and removes the whole
// stack.
func applyArtistItemMisuse(e *Engine, event events.Event, subject string) bool {
	interact := event.(*events.InteractEvent)
	held := pearlItem(interact)
	if held == nil {
		return false
	}
	held.Amount = 0
	interact.Cancel()
	e.feedback.Debug(e.host, subject, "Artist class item destroyed: only Artists can blink")
	return true
}

// Perks and weaknesses

func applyBuilderNoFallDamage(e *Engine, event events.Event, subject string) bool {
	dmg := event.(events.DamageCarrier).Damaged()
	if dmg.Cause != world.DamageFall {
		return false
	}
	dmg.Damage = 0
	dmg.Cancel()
	e.feedback.Perk(e.host, subject, "Builder perk: Fall damage cancelled!")
	return true
}

func applyBuilderTransmute(e *Engine, event events.Event, subject string) bool {
	interact := event.(*events.InteractEvent)
	if transmuteItem(interact) == nil || interact.ClickedBlock == nil {
		return false
	}

	block := interact.ClickedBlock
	next, ok := Transmute(block.Type)
	if !ok {
		return false
	}
	block.Type = next

	center := block.Center()
	e.host.SpawnParticles(center, transmuteParticle, transmuteParticleCount, next)
	e.host.PlaySound(center, fmt.Sprintf("block.%s.break", next))
	e.feedback.Perk(e.host, subject, "Builder perk: Block transmuted!")
	return true
}

func applyMinerBonusEmerald(e *Engine, event events.Event, subject string) bool {
	brk := event.(*events.BlockBreakEvent)
	if brk.Block == nil || !bonusEmeraldOres[brk.Block.Type] {
		return false
	}
	if brk.Actor.GameMode.Unlimited() {
		return false
	}
	e.host.DropItem(brk.Block.Center(), world.NewItemStack(world.MaterialEmerald, 1))
	e.feedback.Perk(e.host, subject, "Miner perk: Free emerald!")
	return true
}

func applyMinerZombieWeakness(e *Engine, event events.Event, subject string) bool {
	dmg := event.(*events.DamageByActorEvent)
	if dmg.Actor == nil || !dmg.Actor.Kind.IsZombie() {
		return false
	}
	dmg.Damage *= zombieDamageMultiplier
	e.feedback.Perk(e.host, subject, "Miner weakness: double damage from zombies!")
	return true
}

func applyWarriorFireAspect(e *Engine, event events.Event, subject string) bool {
	dmg := event.(*events.DamageByActorEvent)
	held := dmg.Actor.HeldItem()
	if held == nil || !held.Material.IsGoldenWeapon() || dmg.Target == nil {
		return false
	}
	dmg.Target.FireTicks = e.tuning.IgniteTicks
	e.host.Ignite(dmg.Target.ID, e.tuning.IgniteTicks)
	e.feedback.Perk(e.host, subject, "Warrior perk: Enemy ignited!")
	return true
}

func applyWarriorFireResistance(e *Engine, event events.Event, subject string) bool {
	dmg := event.(events.DamageCarrier).Damaged()
	if !fireCauses[dmg.Cause] {
		return false
	}
	dmg.Damage = 0
	dmg.Cancel()
	e.feedback.Perk(e.host, subject, "Warrior perk: Fire resistance!")
	return true
}

func applyArtistFreePearl(e *Engine, event events.Event, subject string) bool {
	interact := event.(*events.InteractEvent)
	held := pearlItem(interact)
	if held == nil || interact.Actor.HasCooldown(world.MaterialEnderPearl) {
		return false
	}
	held.Amount = artistPearlTopUp
	e.feedback.Perk(e.host, subject, "Artist perk: free end pearl!")
	return true
}

// transmuteItem returns the held Builder item for a main hand right click on
// a block
func transmuteItem(interact *events.InteractEvent) *world.ItemStack {
	if interact.Action != world.RightClickBlock || interact.Hand != world.HandMain {
		return nil
	}
	held := interact.Actor.HeldItem()
	if !markeditems.IsMarkedFor(held, classes.Builder) {
		return nil
	}
	return held
}

// pearlItem returns the held Artist item for any main hand right click
func pearlItem(interact *events.InteractEvent) *world.ItemStack {
	if !interact.Action.IsRightClick() || interact.Hand != world.HandMain {
		return nil
	}
	held := interact.Actor.HeldItem()
	if !markeditems.IsMarkedFor(held, classes.Artist) {
		return nil
	}
	return held
}

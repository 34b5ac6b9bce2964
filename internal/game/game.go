// Package game runs one dungeon crawl: it owns the world and the current
// level and moves the run-state machine one step per Advance call.
package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/factory"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/intent"
	"dungeoncrawl/internal/logger"
	"dungeoncrawl/internal/system"
)

// Game is the top-level orchestrator. It is not safe for concurrent use;
// every frontend session owns its own Game.
type Game struct {
	cfg     config.Config
	rng     *rand.Rand
	world   *ecs.World
	gmap    *gamemap.Map
	player  ecs.Entity
	queue   *intent.Queue
	log     *gamelog.Log
	state   RunState
	markers []system.Marker
	persist Persistence
	runLog  RunLog
	quit    bool
	err     error
	l       *logrus.Entry
}

// New builds the first level and returns a game sitting in the main menu.
func New(cfg config.Config, rng *rand.Rand) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		rng:     rng,
		world:   ecs.NewWorld(),
		queue:   intent.New(),
		log:     gamelog.New(),
		persist: UnavailablePersistence{},
		l:       logger.For("game"),
	}
	if err := g.newRun(); err != nil {
		return nil, err
	}
	g.state = RunState{Kind: MainMenu, MenuSelection: MenuNewGame}
	return g, nil
}

// newRun clears the world and builds a fresh depth 1 with a new player.
func (g *Game) newRun() error {
	g.world.Clear()
	g.queue.Reset()
	g.log.Clear()
	g.markers = nil

	m, start, spawned, err := buildLevel(g.world, g.cfg, 1, g.rng)
	if err != nil {
		return err
	}
	g.gmap = m
	g.player = factory.NewPlayer(g.world, start.X, start.Y, g.cfg.Player)
	g.runLog = newRunLog(g.cfg)
	g.log.Add("Welcome to the dungeon!")
	g.l.WithFields(logrus.Fields{"rooms": len(m.Rooms), "spawned": spawned}).Info("new run")
	return nil
}

// SetPersistence replaces the save/load backend.
func (g *Game) SetPersistence(p Persistence) { g.persist = p }

// State returns the current run state.
func (g *Game) State() RunState { return g.state }

// Quit reports whether Exit was chosen or the game hit a fatal error.
func (g *Game) Quit() bool { return g.quit }

// Err returns the fatal error that stopped the game, if any.
func (g *Game) Err() error { return g.err }

func (g *Game) World() *ecs.World        { return g.world }
func (g *Game) Map() *gamemap.Map        { return g.gmap }
func (g *Game) Player() ecs.Entity       { return g.player }
func (g *Game) Log() *gamelog.Log        { return g.log }
func (g *Game) Depth() int               { return g.gmap.Depth }
func (g *Game) Markers() []system.Marker { return g.markers }

// Advance performs one tick: it consumes at most one input, runs the
// pipeline if the state calls for it, picks the next state and finally
// sweeps the dead. A nil input means no event is pending.
func (g *Game) Advance(in *Input) RunState {
	next := g.state
	switch g.state.Kind {
	case MainMenu:
		next = g.mainMenu(in)
	case PreRun:
		g.runSystems(false)
		next = RunState{Kind: AwaitingInput}
	case AwaitingInput:
		next = g.playerInput(in)
	case PlayerTurn:
		g.runSystems(false)
		g.runLog.Turns++
		next = RunState{Kind: MonsterTurn}
	case MonsterTurn:
		g.runSystems(true)
		next = RunState{Kind: AwaitingInput}
	case ShowInventory:
		next = g.inventoryMenu(in)
	case ShowItemActions:
		next = g.itemActions(in)
	case ShowTargeting:
		next = g.targeting(in)
	case NextLevel:
		next = g.nextLevel()
	case SaveGame:
		g.save()
		next = RunState{Kind: MainMenu, MenuSelection: MenuLoadGame}
	case GameOver:
		next = g.gameOver(in)
	}

	report := system.DeleteTheDead(g.world, g.log)
	for _, name := range report.Killed {
		g.runLog.Kills[name]++
	}
	if report.PlayerDied && next.Kind != GameOver {
		next = RunState{Kind: GameOver}
		g.endRun()
	}

	if next.Kind != g.state.Kind {
		g.l.WithFields(logrus.Fields{"from": g.state.Kind.String(), "to": next.Kind.String()}).Debug("state change")
	}
	g.state = next
	return next
}

// runSystems is one pipeline pass. The order is fixed: AI decides on the
// previous pass's occupancy, and everything after the indexer sees the
// current one.
func (g *Game) runSystems(monsterTurn bool) {
	system.UpdateVisibility(g.world, g.gmap)
	g.markers = system.MonsterAI(g.world, g.gmap, g.queue, g.player, monsterTurn)
	system.IndexMap(g.world, g.gmap)
	system.ResolveMelee(g.world, g.queue, g.log)
	system.ResolvePickups(g.world, g.queue, g.log, g.player)
	system.ResolveItemUse(g.world, g.gmap, g.queue, g.log, g.player)
	system.ResolveDrops(g.world, g.queue, g.log, g.player)
	system.ResolveUnequips(g.world, g.queue, g.log, g.player)
	system.ApplyDamage(g.world)
}

func (g *Game) mainMenu(in *Input) RunState {
	if in == nil {
		return g.state
	}
	sel := g.state.MenuSelection
	switch in.Action {
	case ActionNavigateUp:
		sel = (sel + menuEntries - 1) % menuEntries
	case ActionNavigateDown:
		sel = (sel + 1) % menuEntries
	case ActionCancel:
		g.quit = true
		sel = MenuExit
	case ActionConfirm:
		switch sel {
		case MenuNewGame:
			return RunState{Kind: PreRun}
		case MenuLoadGame:
			return g.load()
		case MenuExit:
			g.quit = true
		}
	}
	return RunState{Kind: MainMenu, MenuSelection: sel}
}

func (g *Game) playerInput(in *Input) RunState {
	if in == nil {
		return g.state
	}
	switch in.Action {
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW,
		ActionMoveNE, ActionMoveNW, ActionMoveSE, ActionMoveSW:
		dx, dy := Delta(in.Action)
		system.TryMove(g.world, g.gmap, g.queue, g.player, dx, dy)
		return RunState{Kind: PlayerTurn}
	case ActionSkipTurn:
		system.SkipTurn(g.world, g.player)
		return RunState{Kind: PlayerTurn}
	case ActionPickup:
		system.RequestPickup(g.world, g.queue, g.log, g.player)
		return RunState{Kind: PlayerTurn}
	case ActionInventory:
		return RunState{Kind: ShowInventory, Mode: ModeUse}
	case ActionDropMenu:
		return RunState{Kind: ShowInventory, Mode: ModeDrop}
	case ActionDescend:
		if system.OnTile(g.world, g.gmap, g.player, gamemap.StairsDown) {
			return RunState{Kind: NextLevel}
		}
		g.log.Add("There is no way down here.")
	case ActionSave, ActionCancel:
		return RunState{Kind: SaveGame}
	}
	return g.state
}

// Inventory lists what the player carries, backpack first.
func (g *Game) Inventory() []ecs.Entity {
	return system.Carried(g.world, g.player)
}

func (g *Game) inventoryMenu(in *Input) RunState {
	if in == nil {
		return g.state
	}
	switch in.Action {
	case ActionCancel:
		return RunState{Kind: AwaitingInput}
	case ActionConfirm:
		items := g.Inventory()
		if in.Index < 0 || in.Index >= len(items) {
			return g.state
		}
		item := items[in.Index]
		if g.state.Mode == ModeDrop {
			g.queue.PushDrop(intent.Drop{Dropper: g.player, Item: item})
			return RunState{Kind: PlayerTurn}
		}
		return RunState{Kind: ShowItemActions, Item: item}
	}
	return g.state
}

func (g *Game) itemActions(in *Input) RunState {
	item := g.state.Item
	if !g.world.Alive(item) {
		return RunState{Kind: ShowInventory, Mode: ModeUse}
	}
	if in == nil {
		return g.state
	}
	switch in.Action {
	case ActionUse, ActionConfirm:
		if r, ok := ecs.Get[component.Ranged](g.world, item); ok {
			return RunState{Kind: ShowTargeting, Item: item, Range: r.Range}
		}
		g.queue.PushUse(intent.UseItem{User: g.player, Item: item})
		return RunState{Kind: PlayerTurn}
	case ActionDrop:
		g.queue.PushDrop(intent.Drop{Dropper: g.player, Item: item})
		return RunState{Kind: PlayerTurn}
	case ActionUnequip:
		if !g.world.Has(item, component.CEquipped) {
			g.log.Addf("You are not wearing the %s.", g.name(item))
			return g.state
		}
		g.queue.PushUnequip(intent.Unequip{Owner: g.player, Item: item})
		return RunState{Kind: PlayerTurn}
	case ActionCancel:
		return RunState{Kind: ShowInventory, Mode: ModeUse}
	}
	return g.state
}

func (g *Game) targeting(in *Input) RunState {
	if in == nil {
		return g.state
	}
	switch in.Action {
	case ActionCancel:
		return RunState{Kind: AwaitingInput}
	case ActionConfirm:
		if in.Target == nil {
			return g.state
		}
		t := *in.Target
		if !g.InRange(t, g.state.Range) {
			g.log.Add("That is out of range.")
			return g.state
		}
		g.queue.PushUse(intent.UseItem{User: g.player, Item: g.state.Item, Target: &t})
		return RunState{Kind: PlayerTurn}
	}
	return g.state
}

// InRange reports whether the player can see p and p lies within r tiles.
func (g *Game) InRange(p gamemap.Point, r int) bool {
	pos, ok := ecs.Get[component.Position](g.world, g.player)
	if !ok {
		return false
	}
	vs, ok := ecs.Get[component.Viewshed](g.world, g.player)
	if !ok || !vs.CanSee(p) {
		return false
	}
	return p.DistanceSq(gamemap.Point{X: pos.X, Y: pos.Y}) <= r*r
}

// Targets lists the tiles in range r, in map order.
func (g *Game) Targets(r int) []gamemap.Point {
	var out []gamemap.Point
	for idx := range g.gmap.Tiles {
		if p := g.gmap.PointAt(idx); g.InRange(p, r) {
			out = append(out, p)
		}
	}
	return out
}

// nextLevel keeps the player and whatever it carries, despawns the rest
// and builds the next depth.
func (g *Game) nextLevel() RunState {
	keep := mapset.New[ecs.Entity]()
	keep.Put(g.player)
	for _, item := range system.Carried(g.world, g.player) {
		keep.Put(item)
	}
	for _, e := range g.world.Entities() {
		if !keep.Has(e) {
			_ = g.world.Despawn(e)
		}
	}
	g.queue.Reset()
	g.markers = nil

	depth := g.gmap.Depth + 1
	m, start, spawned, err := buildLevel(g.world, g.cfg, depth, g.rng)
	if err != nil {
		g.fail(err)
		return g.state
	}
	g.gmap = m
	g.world.Add(g.player, component.Position{X: start.X, Y: start.Y})
	if vs, ok := ecs.Get[component.Viewshed](g.world, g.player); ok {
		vs.Dirty = true
		g.world.Add(g.player, vs)
	}
	g.runLog.Depth = max(g.runLog.Depth, depth)
	g.log.Addf("You descend to level %d.", depth)
	g.l.WithFields(logrus.Fields{"depth": depth, "spawned": spawned}).Info("next level")
	return RunState{Kind: PreRun}
}

func (g *Game) gameOver(in *Input) RunState {
	if in == nil {
		return g.state
	}
	if err := g.newRun(); err != nil {
		g.fail(err)
		return g.state
	}
	return RunState{Kind: MainMenu, MenuSelection: MenuNewGame}
}

func (g *Game) endRun() {
	g.log.Add("You are dead.")
	if err := saveRunLog(g.runLog); err != nil {
		g.l.WithError(err).Warn("run log not written")
	}
	g.l.WithFields(logrus.Fields{"depth": g.runLog.Depth, "turns": g.runLog.Turns}).Info("player died")
}

func (g *Game) save() {
	err := g.persist.Save(SaveData{World: g.world, Map: g.gmap, Player: g.player})
	if err != nil {
		g.l.WithError(err).Error("save failed")
		g.log.Add("The game could not be saved.")
		return
	}
	g.log.Add("Game saved.")
}

func (g *Game) load() RunState {
	data, err := g.persist.Load()
	if err != nil {
		g.l.WithError(err).Error("load failed")
		g.log.Add("No saved game could be loaded.")
		return RunState{Kind: MainMenu, MenuSelection: MenuLoadGame}
	}
	g.world, g.gmap, g.player = data.World, data.Map, data.Player
	g.queue.Reset()
	g.markers = nil
	return RunState{Kind: PreRun}
}

// fail stops the game on an unrecoverable error.
func (g *Game) fail(err error) {
	g.err = err
	g.quit = true
	g.l.WithError(err).Error("game stopped")
}

func (g *Game) name(e ecs.Entity) string {
	if n, ok := ecs.Get[component.Name](g.world, e); ok {
		return n.Name
	}
	return "item"
}

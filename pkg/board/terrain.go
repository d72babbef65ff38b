package board

import "fmt"

// Terrain is a tile's category: a producing resource terrain, the desert,
// or - on border tiles - the trade port kind the tile offers.
type Terrain int

const (
	// TerrainNone marks a tile that has not been assigned yet.
	TerrainNone Terrain = iota

	// Producing terrain kinds.
	Fields    // grain
	Forest    // lumber
	Hills     // brick
	Mountains // ore
	Pasture   // wool

	// Desert produces nothing and never carries a number.
	Desert

	// Port kinds, used only on port tiles. Resource ports trade 2:1 for
	// their matching terrain's resource; PortAny trades 3:1 for anything.
	PortGrain
	PortLumber
	PortBrick
	PortOre
	PortWool
	PortAny
)

// PortForTerrain maps each producing terrain to its matching 2:1 port.
var PortForTerrain = map[Terrain]Terrain{
	Fields:    PortGrain,
	Forest:    PortLumber,
	Hills:     PortBrick,
	Mountains: PortOre,
	Pasture:   PortWool,
}

// TerrainForPort maps each resource port back to the terrain whose
// production it trades. PortAny has no match and is absent.
var TerrainForPort = map[Terrain]Terrain{
	PortGrain:  Fields,
	PortLumber: Forest,
	PortBrick:  Hills,
	PortOre:    Mountains,
	PortWool:   Pasture,
}

var terrainNames = map[Terrain]string{
	TerrainNone: "none",
	Fields:      "fields",
	Forest:      "forest",
	Hills:       "hills",
	Mountains:   "mountains",
	Pasture:     "pasture",
	Desert:      "desert",
	PortGrain:   "grain port",
	PortLumber:  "lumber port",
	PortBrick:   "brick port",
	PortOre:     "ore port",
	PortWool:    "wool port",
	PortAny:     "any port",
}

// labels are the at-most-five-character tags used by the text renderer.
var terrainLabels = map[Terrain]string{
	TerrainNone: "",
	Fields:      "FIELD",
	Forest:      "FRST",
	Hills:       "HILLS",
	Mountains:   "MNTN",
	Pasture:     "PSTR",
	Desert:      "DSRT",
	PortGrain:   "GRAIN",
	PortLumber:  "WOOD",
	PortBrick:   "BRICK",
	PortOre:     "ROCK",
	PortWool:    "SHEEP",
	PortAny:     "ANY",
}

// IsPort reports whether the terrain is one of the port kinds.
func (t Terrain) IsPort() bool {
	return t >= PortGrain && t <= PortAny
}

// Produces reports whether the terrain is a producing resource kind
// (not desert, not a port, not unassigned).
func (t Terrain) Produces() bool {
	return t >= Fields && t <= Pasture
}

// String returns a lowercase human-readable name such as "pasture" or
// "ore port".
func (t Terrain) String() string {
	if s, ok := terrainNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Terrain(%d)", int(t))
}

// Label returns the short uppercase tag used on rendered boards, at most
// five characters ("FRST", "SHEEP", "ANY").
func (t Terrain) Label() string {
	return terrainLabels[t]
}

// Package registry holds the static, process-global table of namespaced
// registries pushed to clients during Configuration via RegistryData. The
// table is built once at package init from literal NBT data and never
// mutated afterward, rather than generated by an external build step.
package registry

import (
	"bytes"
	"fmt"

	"github.com/meesudzu/ocelot/internal/protocol/nbt"
)

// Entry is one (namespaced id, pre-encoded network-NBT payload) pair within
// a registry.
type Entry struct {
	ID   string
	Data []byte
}

// Registry is a namespaced registry id and its ordered entries.
type Registry struct {
	ID      string
	Entries []Entry
}

// All is the immutable, process-global list of synced registries, in the
// order they are pushed to a client after serverbound KnownPacks.
var All []Registry

func init() {
	All = []Registry{
		buildRegistry("minecraft:dimension_type", map[string]nbt.Compound{
			"minecraft:overworld": overworldDimensionType(),
		}),
		buildRegistry("minecraft:worldgen/biome", map[string]nbt.Compound{
			"minecraft:plains": plainsBiome(),
			"minecraft:ocean":  oceanBiome(),
		}),
		buildRegistry("minecraft:chat_type", map[string]nbt.Compound{
			"minecraft:chat": chatTypeChat(),
		}),
		buildRegistry("minecraft:trim_pattern", map[string]nbt.Compound{
			"minecraft:coast": simpleAssetComponent("minecraft:trim_pattern/coast", "trim_pattern.coast"),
		}),
		buildRegistry("minecraft:trim_material", map[string]nbt.Compound{
			"minecraft:iron": trimMaterial("iron", 0.8),
		}),
		buildRegistry("minecraft:wolf_variant", map[string]nbt.Compound{
			"minecraft:pale": wolfVariant("pale"),
		}),
		buildRegistry("minecraft:painting_variant", map[string]nbt.Compound{
			"minecraft:kebab": paintingVariant(16, 16),
		}),
		buildRegistry("minecraft:damage_type", map[string]nbt.Compound{
			"minecraft:generic": damageType("generic", 0.1),
		}),
	}
}

// buildRegistry encodes each entry as network NBT and orders the entries by
// ascending id, so registries always push entries in a stable,
// deterministic order across restarts even though the source map has none.
func buildRegistry(id string, entries map[string]nbt.Compound) Registry {
	names := sortedKeys(entries)
	out := Registry{ID: id}
	for _, name := range names {
		var buf bytes.Buffer
		if err := nbt.EncodeNetwork(&buf, entries[name]); err != nil {
			panic(fmt.Sprintf("registry: failed to encode %s/%s: %v", id, name, err))
		}
		out.Entries = append(out.Entries, Entry{ID: name, Data: buf.Bytes()})
	}
	return out
}

func sortedKeys(m map[string]nbt.Compound) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Simple insertion sort: registry entry counts are small and fixed.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func overworldDimensionType() nbt.Compound {
	return nbt.Compound{
		"piglin_safe":            nbt.Byte(0),
		"has_raids":              nbt.Byte(1),
		"monster_spawn_light_level": nbt.Int(0),
		"monster_spawn_block_light_limit": nbt.Int(0),
		"natural":                nbt.Byte(1),
		"ambient_light":          nbt.Float(0.0),
		"fixed_time":             nbt.Long(0),
		"infiniburn":             nbt.String("#minecraft:infiniburn_overworld"),
		"respawn_anchor_works":   nbt.Byte(0),
		"has_skylight":           nbt.Byte(1),
		"bed_works":              nbt.Byte(1),
		"effects":                nbt.String("minecraft:overworld"),
		"min_y":                  nbt.Int(-64),
		"height":                 nbt.Int(384),
		"logical_height":         nbt.Int(384),
		"coordinate_scale":       nbt.Double(1.0),
		"ultrawarm":              nbt.Byte(0),
		"has_ceiling":            nbt.Byte(0),
	}
}

func plainsBiome() nbt.Compound {
	return nbt.Compound{
		"has_precipitation": nbt.Byte(1),
		"temperature":       nbt.Float(0.8),
		"downfall":          nbt.Float(0.4),
		"effects": nbt.Compound{
			"sky_color":       nbt.Int(7907327),
			"fog_color":       nbt.Int(12638463),
			"water_color":     nbt.Int(4159204),
			"water_fog_color": nbt.Int(329011),
		},
	}
}

func oceanBiome() nbt.Compound {
	return nbt.Compound{
		"has_precipitation": nbt.Byte(1),
		"temperature":       nbt.Float(0.5),
		"downfall":          nbt.Float(0.5),
		"effects": nbt.Compound{
			"sky_color":       nbt.Int(8103167),
			"fog_color":       nbt.Int(12638463),
			"water_color":     nbt.Int(4159204),
			"water_fog_color": nbt.Int(329011),
		},
	}
}

func chatTypeChat() nbt.Compound {
	return nbt.Compound{
		"chat": nbt.Compound{
			"translation_key": nbt.String("chat.type.text"),
			"parameters":      nbt.List{ElementType: nbt.TagString, Items: []nbt.Tag{nbt.String("sender"), nbt.String("content")}},
		},
		"narration": nbt.Compound{
			"translation_key": nbt.String("chat.type.text.narrate"),
			"parameters":      nbt.List{ElementType: nbt.TagString, Items: []nbt.Tag{nbt.String("sender"), nbt.String("content")}},
		},
	}
}

func simpleAssetComponent(id, template string) nbt.Compound {
	return nbt.Compound{
		"asset_id":  nbt.String(id),
		"template_item": nbt.String(template),
		"decal":     nbt.Byte(0),
	}
}

func trimMaterial(key string, itemModelIndex float64) nbt.Compound {
	return nbt.Compound{
		"asset_name":       nbt.String(key),
		"description":      nbt.Compound{"translate": nbt.String("trim_material." + key)},
		"item_model_index": nbt.Float(float32(itemModelIndex)),
	}
}

func wolfVariant(key string) nbt.Compound {
	return nbt.Compound{
		"wild_texture":   nbt.String("minecraft:entity/wolf/wolf_" + key),
		"tame_texture":   nbt.String("minecraft:entity/wolf/wolf_" + key + "_tame"),
		"angry_texture":  nbt.String("minecraft:entity/wolf/wolf_" + key + "_angry"),
		"biomes":         nbt.String("minecraft:taiga"),
	}
}

func paintingVariant(width, height int32) nbt.Compound {
	return nbt.Compound{
		"asset_id": nbt.String("minecraft:kebab"),
		"width":    nbt.Int(width),
		"height":   nbt.Int(height),
	}
}

func damageType(key string, exhaustion float64) nbt.Compound {
	return nbt.Compound{
		"message_id":        nbt.String(key),
		"scaling":           nbt.String("when_caused_by_living_non_player"),
		"exhaustion":        nbt.Float(float32(exhaustion)),
	}
}

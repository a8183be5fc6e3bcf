package nodes

import (
	"path/filepath"

	"outfitforge/logger"
	"outfitforge/outfit"
	"outfitforge/settings"
)

// Registry holds the node class and display name tables the graph host
// registers at startup.
type Registry struct {
	Nodes        map[string]*OutfitNode
	DisplayNames map[string]string
}

// BuildRegistry creates one outfit node per discovered gender folder.
func BuildRegistry(cfg settings.OutfitConfig, deps Deps) *Registry {
	registry := &Registry{
		Nodes:        map[string]*OutfitNode{},
		DisplayNames: map[string]string{},
	}

	genders := outfit.DiscoverGenders(filepath.Join(cfg.DataDir, "outfit"))
	if len(genders) == 0 {
		logger.Warn("No gender folders found", "dataDir", cfg.DataDir)
		return registry
	}

	for _, gender := range genders {
		node := New(gender, cfg, deps)
		registry.Nodes[node.Class] = node
		registry.DisplayNames[node.Class] = capitalize(gender) + " Outfit"
		logger.Info("Registered outfit node", "class", node.Class, "bodyParts", len(node.BodyParts()))
	}

	return registry
}

// Get returns the node registered under the given class name.
func (r *Registry) Get(class string) (*OutfitNode, bool) {
	node, ok := r.Nodes[class]
	return node, ok
}

package sim

// Archetype keys handed to the visual collaborator
const (
	SkinPlayerA = "character-a"
	SkinPlayerB = "character-b"

	SkinGround    = "ground"
	SkinIndicator = "indicator"
	SkinTree      = "tree"
	SkinHealthBar = "health-bar"
)

// PlayerSkins are the selectable player characters
var PlayerSkins = []string{SkinPlayerA, SkinPlayerB}

// EnemySkins are picked uniformly for every spawned enemy
var EnemySkins = []string{"character-p", "character-q", "character-n", "character-m"}

// BuildingSkins line the lane; each side walks the list with a different phase
var BuildingSkins = []string{"building-i", "building-p", "building-j", "building-s"}

// IsPlayerSkin reports whether key names a selectable player character
func IsPlayerSkin(key string) bool {
	for _, s := range PlayerSkins {
		if s == key {
			return true
		}
	}
	return false
}

// buildingSkin returns the building for row i on the given side of the lane
func buildingSkin(i int, side float64) string {
	if i < 0 {
		i = -i
	}
	if side < 0 {
		i += 2
	}
	return BuildingSkins[i%len(BuildingSkins)]
}

package gpuinfo

import (
	"fmt"
	"strings"
)

// Architecture is a GPU generation bucket of the Mali lineage
type Architecture uint8

const (
	ArchUnknown Architecture = iota
	ArchLegacyTiled
	ArchMidGeneration
	ArchModernTiledA
	ArchModernTiledB
)

type archTraits struct {
	name                   string
	codename               string
	tileTransactionElision bool
	frameCompression       bool
}

var traits = [...]archTraits{
	ArchUnknown:       {name: "UNKNOWN", codename: "Unknown"},
	ArchLegacyTiled:   {name: "LEGACY_TILED", codename: "Utgard"},
	ArchMidGeneration: {name: "MID_GENERATION", codename: "Midgard", tileTransactionElision: true},
	ArchModernTiledA:  {name: "MODERN_TILED_A", codename: "Bifrost", tileTransactionElision: true, frameCompression: true},
	ArchModernTiledB:  {name: "MODERN_TILED_B", codename: "Valhall", tileTransactionElision: true, frameCompression: true},
}

func (a Architecture) traits() archTraits {
	if int(a) < len(traits) {
		return traits[a]
	}
	return traits[ArchUnknown]
}

func (a Architecture) String() string {
	if int(a) >= len(traits) {
		return fmt.Sprintf("Architecture(%d)", uint8(a))
	}
	return traits[a].name
}

// Codename is the vendor's marketing name of the generation
func (a Architecture) Codename() string {
	return a.traits().codename
}

// SupportsTileTransactionElimination is a fixed property of the generation
func (a Architecture) SupportsTileTransactionElimination() bool {
	return a.traits().tileTransactionElision
}

// SupportsFrameCompression is a fixed property of the generation
func (a Architecture) SupportsFrameCompression() bool {
	return a.traits().frameCompression
}

// MarshalText encodes the architecture by name
func (a Architecture) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText
func (a *Architecture) UnmarshalText(text []byte) error {
	for i, t := range traits {
		if t.name == string(text) {
			*a = Architecture(i)
			return nil
		}
	}
	return fmt.Errorf("unknown architecture %q", text)
}

const maliToken = "mali"

type archRule struct {
	arch   Architecture
	tokens []string
}

// architectureRules is evaluated top to bottom, newest first. A numeric token
// only matches a whole model number, so "g71" never matches "g710" or "g715".
// Numbers not listed here stay ArchUnknown.
var architectureRules = []archRule{
	{arch: ArchModernTiledB, tokens: []string{"g57", "g68", "g77", "g78", "g310", "g510", "g610", "g615", "g710", "g715", "g720", "g925"}},
	{arch: ArchModernTiledA, tokens: []string{"g31", "g51", "g52", "g71", "g72", "g76"}},
	{arch: ArchMidGeneration, tokens: []string{"mali-t"}},
	{arch: ArchLegacyTiled, tokens: []string{"200", "300", "400", "450", "470"}},
}

// Classify maps a renderer string to its architecture. Renderers without the
// Mali token are never guessed into a family.
func Classify(renderer string) Architecture {
	r := strings.ToLower(renderer)
	if !strings.Contains(r, maliToken) {
		return ArchUnknown
	}
	for _, rule := range architectureRules {
		for _, token := range rule.tokens {
			if containsModel(r, token) {
				return rule.arch
			}
		}
	}
	return ArchUnknown
}

// containsModel reports whether token occurs in r without a digit directly
// before its first digit or directly after its last one.
func containsModel(r, token string) bool {
	for from := 0; ; {
		idx := strings.Index(r[from:], token)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(token)
		if !(isDigit(token[0]) && start > 0 && isDigit(r[start-1])) &&
			!(isDigit(token[len(token)-1]) && end < len(r) && isDigit(r[end])) {
			return true
		}
		from = start + 1
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

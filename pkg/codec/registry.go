package codec

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[uint8]Codec)
	byName     = make(map[string]uint8)
)

// Register registers a codec implementation. Implementations call it from
// their package init; registering the same ID twice panics.
func Register(c Codec) {
	if err := register(c); err != nil {
		panic(err)
	}
}

func register(c Codec) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[c.ID()]; ok {
		return fmt.Errorf("%w: 0x%02x (%s)", ckerrors.ErrDuplicateCodec, c.ID(), c.Name())
	}
	registry[c.ID()] = c
	byName[strings.ToLower(c.Name())] = c.ID()
	return nil
}

// Get retrieves a codec by ID
func Get(id uint8) (Codec, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ckerrors.ErrUnknownCodec, id)
	}
	return c, nil
}

// Lookup retrieves a codec by name (case-insensitive). "b64" and "base16"
// are accepted as aliases.
func Lookup(name string) (Codec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}

	registryMu.RLock()
	id, ok := byName[key]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ckerrors.ErrUnknownCodec, name)
	}
	return Get(id)
}

// Names returns the registered codec names, sorted
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetName returns the name of a codec by ID
func GetName(id uint8) string {
	switch id {
	case CODEC_NONE:
		return "NONE"
	case CODEC_BASE64:
		return "BASE64"
	case CODEC_HEX:
		return "HEX"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}

var aliases = map[string]string{
	"b64":    "base64",
	"base16": "hex",
}

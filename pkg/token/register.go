package token

import "sync"

var (
	registerMu sync.RWMutex

	// nextTokenID tracks the next available dynamic token ID.
	nextTokenID = maxBuiltin

	dynamicTokens = make(map[TokenType]string)
	dynamicNames  = make(map[string]TokenType)
)

// Register registers a plugin-specific token type with the given name and
// returns its type. Registering the same name twice returns the same type.
func Register(name string) TokenType {
	registerMu.Lock()
	defer registerMu.Unlock()

	if t, ok := dynamicNames[name]; ok {
		return t
	}
	nextTokenID++
	t := nextTokenID
	dynamicTokens[t] = name
	dynamicNames[name] = t
	return t
}

func getDynamicName(t TokenType) (string, bool) {
	registerMu.RLock()
	defer registerMu.RUnlock()
	name, ok := dynamicTokens[t]
	return name, ok
}

// Lookup returns the token type registered under name.
func Lookup(name string) (TokenType, bool) {
	registerMu.RLock()
	defer registerMu.RUnlock()
	t, ok := dynamicNames[name]
	return t, ok
}

// IsDynamic returns true if the token type was registered at runtime.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// RegisteredTokens returns a copy of all registered dynamic tokens.
func RegisteredTokens() map[TokenType]string {
	registerMu.RLock()
	defer registerMu.RUnlock()
	result := make(map[TokenType]string, len(dynamicTokens))
	for k, v := range dynamicTokens {
		result[k] = v
	}
	return result
}

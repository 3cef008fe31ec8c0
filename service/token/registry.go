package token

import (
	"pegvault/core"
)

type registry struct {
	tokens map[string]core.Token
}

// NewRegistry new registry resolving asset ids to token collaborators,
// each already bound to the engine's identity
func NewRegistry(tokens ...core.Token) core.TokenRegistry {
	r := &registry{tokens: make(map[string]core.Token, len(tokens))}
	for _, t := range tokens {
		r.tokens[t.AssetID()] = t
	}
	return r
}

func (r *registry) Token(assetID string) (core.Token, error) {
	t, ok := r.tokens[assetID]
	if !ok {
		return nil, core.ErrNotAllowedToken
	}
	return t, nil
}

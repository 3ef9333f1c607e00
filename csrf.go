package sift

import (
	"context"

	"github.com/annokit/sift/i18n"
)

// TokenVerifier is the external CSRF capability. The core neither issues nor
// verifies tokens; form schemas built on top of it delegate here.
type TokenVerifier interface {
	Verify(ctx context.Context, submitted string) error
}

// TokenVerifierFunc adapts a function to the TokenVerifier interface.
type TokenVerifierFunc func(ctx context.Context, submitted string) error

func (f TokenVerifierFunc) Verify(ctx context.Context, submitted string) error {
	return f(ctx, submitted)
}

// CSRFNode builds the hook-point schema node for form schemas: an optional
// hidden string field whose check delegates to the verifier. A verifier
// failure surfaces as a single CodeCSRFFailure violation at the node's path.
func CSRFNode(name string, verifier TokenVerifier) *SchemaNode {
	return &SchemaNode{
		Name: name,
		Kind: KindString,
		Check: func(ctx context.Context, path string, value any) error {
			token, _ := value.(string)
			if err := verifier.Verify(ctx, token); err != nil {
				return NewValidationError([]Violation{{
					Path: path, Code: CodeCSRFFailure, Message: i18n.T(CodeCSRFFailure, nil),
				}})
			}
			return nil
		},
	}
}

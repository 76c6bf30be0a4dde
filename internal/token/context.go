// Package token verifies bearer credentials and carries the raw
// credential of the current request through context.
package token

import "context"

type contextKey string

const credentialKey contextKey = "credential"

// WithCredential stores the raw Authorization header value in the context.
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey, credential)
}

// CredentialFromContext returns the raw credential, or "" when the
// request carried none.
func CredentialFromContext(ctx context.Context) string {
	credential, _ := ctx.Value(credentialKey).(string)
	return credential
}

package port

import "context"

// TextGenerator is the black-box text generation collaborator. It takes
// a prompt and returns loosely structured text; callers are responsible
// for coercing the response into their schema.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IdentityVerifier validates an OAuth identity token and returns the
// verified email address it asserts.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, credential string) (email string, err error)
}

// TokenIssuer signs an authentication token for the given subject.
type TokenIssuer interface {
	Issue(userID int64, email, role string) (string, error)
}

package catalog

import "github.com/herd-lab/follow-the-herd/internal/core/storage"

// AuthContext carries everything needed to call the external catalog API on
// behalf of one shop. It is passed explicitly through the pipeline; there is
// no process-wide session singleton.
type AuthContext struct {
	Shop        string
	AccessToken string
}

// AuthFromSession builds an auth context from a stored offline session.
func AuthFromSession(sess *storage.Session) *AuthContext {
	if sess == nil {
		return nil
	}
	return &AuthContext{
		Shop:        sess.Shop,
		AccessToken: sess.AccessToken,
	}
}

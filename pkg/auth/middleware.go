package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/thientruong51/asms-booking/pkg/httpx"
	"github.com/thientruong51/asms-booking/pkg/logger"
)

const sessionName = "asms_session"
const sessionCustomerIDKey = "customer_id"

// EnsureCustomer is a chi middleware that resolves the customer session for a
// request. The booking wizard runs before any login, so a request without a
// session is not rejected: a fresh customer ID is minted, saved into the
// session, and the cookie is set on the response. Selection drafts and
// notification ledgers are scoped by this ID.
//
// After this middleware, handlers can safely call auth.CustomerIDFromCtx(r.Context()).
func EnsureCustomer(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				// Tampered cookie: fall through with the fresh session Get returned.
				log.WarnContext(r.Context(), "invalid session cookie, minting new session", "error", err)
			}

			customerID, ok := parseCustomerID(session)
			if !ok {
				customerID = uuid.New()
				session.Values[sessionCustomerIDKey] = customerID.String()
				if err := session.Save(r, w); err != nil {
					log.ErrorContext(r.Context(), "failed to save session", "error", err)
					httpx.JSONError(w, http.StatusInternalServerError, "session unavailable")
					return
				}
			}

			ctx := WithCustomerID(r.Context(), customerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseCustomerID(session *sessions.Session) (uuid.UUID, bool) {
	raw, ok := session.Values[sessionCustomerIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

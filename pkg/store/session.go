package store

import (
	"log/slog"
	"sync"

	"techstore/internal/util"
	"techstore/pkg/domain"
	"techstore/pkg/kv"
)

// identityRecordKey is the persisted-record key for the current identity.
const identityRecordKey = "currentUser"

// SessionStore tracks at most one signed-in identity against a seeded
// account list and persists it across restarts. Absence of an identity
// means logged out. Credential checks are case-sensitive exact matches
// over plaintext demo passwords; there is no lockout or hashing.
type SessionStore struct {
	subscriptions

	mu       sync.RWMutex
	accounts []Account
	current  *domain.User

	records kv.Store
	codec   *IdentityCodec
}

// NewSessionStore seeds the account list and restores any persisted
// identity. A record that fails signature verification is discarded and
// the session starts logged out.
func NewSessionStore(accounts []Account, records kv.Store, codec *IdentityCodec) *SessionStore {
	s := &SessionStore{
		accounts: append([]Account(nil), accounts...),
		records:  records,
		codec:    codec,
	}
	s.restore()
	return s
}

func (s *SessionStore) restore() {
	raw, ok, err := s.records.Get(identityRecordKey)
	if err != nil {
		slog.Warn("read persisted identity", "err", err)
		return
	}
	if !ok {
		return
	}
	user, err := s.codec.Decode(string(raw))
	if err != nil {
		slog.Warn("discarding invalid persisted identity", "err", err)
		if err := s.records.Delete(identityRecordKey); err != nil {
			slog.Warn("remove invalid persisted identity", "err", err)
		}
		return
	}
	s.current = &user
}

// Current returns the signed-in user, or ok=false when logged out.
func (s *SessionStore) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// Login checks email and password against the account list. On success
// the matched identity (password stripped) becomes current and is
// persisted; on failure the session is left unchanged.
func (s *SessionStore) Login(email, password string) bool {
	s.mu.Lock()
	var found *domain.User
	for _, a := range s.accounts {
		if a.User.Email == email && a.Password == password {
			u := a.User
			found = &u
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return false
	}
	s.current = found
	user := *found
	s.mu.Unlock()

	s.persistIdentity(user)
	s.notify()
	return true
}

// Register appends a new standard-role account and signs it in. Fails
// without mutating anything when the email is already taken. The store
// itself enforces no format rules; callers may pre-validate.
func (s *SessionStore) Register(email, password, name string) bool {
	s.mu.Lock()
	for _, a := range s.accounts {
		if a.User.Email == email {
			s.mu.Unlock()
			return false
		}
	}
	user := domain.User{
		ID:    util.NewID(),
		Email: email,
		Name:  name,
		Role:  domain.RoleUser,
	}
	s.accounts = append(s.accounts, Account{User: user, Password: password})
	s.current = &user
	s.mu.Unlock()

	s.persistIdentity(user)
	s.notify()
	return true
}

// Logout clears the current identity and removes the persisted record.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.records.Delete(identityRecordKey); err != nil {
		slog.Warn("remove persisted identity", "err", err)
	}
	s.notify()
}

// Persistence is best-effort: a failed write is logged, never surfaced.
func (s *SessionStore) persistIdentity(u domain.User) {
	record, err := s.codec.Encode(u)
	if err != nil {
		slog.Warn("encode identity record", "err", err)
		return
	}
	if err := s.records.Set(identityRecordKey, []byte(record)); err != nil {
		slog.Warn("persist identity record", "err", err)
	}
}

package farm

import (
	"encoding/json"
	"fmt"

	"aquafarm/internal/model"
)

// Login authenticates by exact username/password match over the users
// collection. The error never reveals whether the username existed.
// When remember is false the session expires after model.SessionTTL.
func (s *FarmService) Login(username, password string, remember bool) (model.User, error) {
	for _, u := range s.state.Users {
		if u.Username == username && u.Password == password {
			if err := s.saveSession(u, remember); err != nil {
				return model.User{}, err
			}
			s.logger.Info("login", "username", username)
			return u, nil
		}
	}
	s.logger.Warn("login rejected", "username", username)
	return model.User{}, ErrInvalidCredentials
}

// Register appends a new user to the aggregate and immediately logs in as
// that user. Usernames must be unique.
func (s *FarmService) Register(name, username, phone, email, password string) (model.User, error) {
	if username == "" {
		username = model.DeriveUsername(name)
	}
	for _, u := range s.state.Users {
		if u.Username == username {
			return model.User{}, ErrUsernameTaken
		}
	}

	user := model.User{
		ID:       s.idgen.New(),
		Name:     name,
		Username: username,
		Phone:    phone,
		Email:    email,
		Password: password,
		CanEdit:  true,
	}

	next := s.state.Clone()
	next.Users = append(next.Users, user)
	if err := s.setState(next); err != nil {
		return model.User{}, err
	}

	if err := s.saveSession(user, false); err != nil {
		return model.User{}, err
	}
	s.logger.Info("user registered", "username", username)
	return user, nil
}

// Logout clears the persisted session.
func (s *FarmService) Logout() error {
	s.session = nil
	if err := s.store.Delete(SessionKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// CurrentUser returns the identity snapshot of the active session, or
// false when nobody is logged in.
func (s *FarmService) CurrentUser() (model.User, bool) {
	if s.session == nil {
		return model.User{}, false
	}
	return s.session.User, true
}

// saveSession persists the session identity snapshot.
func (s *FarmService) saveSession(u model.User, remember bool) error {
	sess := &model.Session{
		User:       u,
		RememberMe: remember,
		SavedAt:    s.clock.Now().UTC(),
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := s.store.Put(SessionKey, b); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.session = sess
	return nil
}

// restoreSession recovers the saved identity, discarding expired or
// unreadable sessions.
func (s *FarmService) restoreSession() {
	raw, err := s.store.Get(SessionKey)
	if err != nil || raw == nil {
		return
	}

	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logger.Warn("saved session is malformed, discarding", "error", err)
		s.store.Delete(SessionKey)
		return
	}
	if sess.Expired(s.clock.Now()) {
		s.logger.Info("session expired", "username", sess.User.Username)
		s.store.Delete(SessionKey)
		return
	}
	s.session = &sess
}

package farm

import "aquafarm/internal/model"

// ListUsers returns all user accounts.
func (s *FarmService) ListUsers() []model.User {
	return append([]model.User{}, s.state.Users...)
}

// SetCanEdit grants or revokes edit rights on a user. Only a master user
// may change permissions.
func (s *FarmService) SetCanEdit(username string, canEdit bool) error {
	if err := s.requireMaster(); err != nil {
		return err
	}

	next := s.state.Clone()
	idx := findUser(next.Users, username)
	if idx < 0 {
		return ErrNotFound
	}
	next.Users[idx].CanEdit = canEdit
	return s.setState(next)
}

// PromoteMaster flags a user as master. At most one master record may
// exist, so promotion is rejected while another master holds the flag.
func (s *FarmService) PromoteMaster(username string) error {
	if err := s.requireMaster(); err != nil {
		return err
	}

	next := s.state.Clone()
	idx := findUser(next.Users, username)
	if idx < 0 {
		return ErrNotFound
	}
	for i, u := range next.Users {
		if u.IsMaster && i != idx {
			return ErrMasterExists
		}
	}
	next.Users[idx].IsMaster = true
	next.Users[idx].CanEdit = true
	return s.setState(next)
}

// DemoteMaster removes the master flag from a user.
func (s *FarmService) DemoteMaster(username string) error {
	if err := s.requireMaster(); err != nil {
		return err
	}

	next := s.state.Clone()
	idx := findUser(next.Users, username)
	if idx < 0 {
		return ErrNotFound
	}
	next.Users[idx].IsMaster = false
	return s.setState(next)
}

// RemoveUser deletes a user account. The seeded master cannot remove
// itself while logged in as it.
func (s *FarmService) RemoveUser(username string) error {
	if err := s.requireMaster(); err != nil {
		return err
	}
	if s.session != nil && s.session.User.Username == username {
		return ErrPermissionDenied
	}

	next := s.state.Clone()
	idx := findUser(next.Users, username)
	if idx < 0 {
		return ErrNotFound
	}
	next.Users = append(next.Users[:idx], next.Users[idx+1:]...)
	return s.setState(next)
}

// requireMaster ensures the active session belongs to a master user.
func (s *FarmService) requireMaster() error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	if !u.IsMaster {
		return ErrPermissionDenied
	}
	return nil
}

func findUser(users []model.User, username string) int {
	for i := range users {
		if users[i].Username == username {
			return i
		}
	}
	return -1
}

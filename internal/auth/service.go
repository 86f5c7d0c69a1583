package auth

import (
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// User identifies the current actor.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type credential struct {
	user     User
	password string
}

// Demo directory shipped with the dashboard.
var demoDirectory = []credential{
	{user: User{ID: "1", Name: "أحمد العلي", Email: "admin@races.com", Role: RoleAdmin}, password: "admin123"},
	{user: User{ID: "2", Name: "محمد السباق", Email: "organizer@races.com", Role: RoleOrganizer}, password: "org123"},
	{user: User{ID: "3", Name: "فاطمة الخيل", Email: "owner@races.com", Role: RoleOwner}, password: "owner123"},
	{user: User{ID: "4", Name: "علي الحكم", Email: "judge@races.com", Role: RoleJudge}, password: "judge123"},
	{user: User{ID: "5", Name: "زائر عام", Email: "viewer@races.com", Role: RoleViewer}, password: "viewer123"},
}

// Service authenticates demo users and issues expiring session tokens.
type Service struct {
	sessions *cache.Cache
	logger   *logrus.Logger
}

// NewService creates an auth service whose sessions expire after ttl.
func NewService(ttl time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		sessions: cache.New(ttl, 2*ttl),
		logger:   logger,
	}
}

// Login checks the credentials against the demo directory and, on success,
// starts a session and returns its token with the authenticated user.
func (s *Service) Login(email, password string) (string, *User, bool) {
	for _, cred := range demoDirectory {
		if cred.user.Email == email && cred.password == password {
			user := cred.user
			token := uuid.NewString()
			s.sessions.Set(token, &user, cache.DefaultExpiration)

			s.logger.WithFields(logrus.Fields{
				"user_id": user.ID,
				"role":    user.Role,
			}).Info("User logged in")
			return token, &user, true
		}
	}

	s.logger.WithField("email", email).Warn("Login rejected")
	return "", nil, false
}

// Session resolves a session token to its user, if the session is still
// live.
func (s *Service) Session(token string) (*User, bool) {
	value, found := s.sessions.Get(token)
	if !found {
		return nil, false
	}
	user, ok := value.(*User)
	if !ok {
		return nil, false
	}
	return user, true
}

// Logout revokes a session token.
func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

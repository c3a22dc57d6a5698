package staff

import (
	"errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("a user with this username already exists")
	ErrOwnAccount     = errors.New("cannot delete the signed-in account")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username string) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByUsername(username string) (User, error)
		DeleteUserByID(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(uname string) error {
	if err := svc.repo.CheckUsernameUniqueness(uname); err != nil {
		if errors.Is(err, ErrUsernameExists) {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	return svc.repo.CreateUser(User{
		Name:     nu.Name,
		Username: nu.Username,
		Role:     Role(nu.Role),
	})
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true /* lower */))
}

// Delete removes a staff account. The account driving the current session
// cannot delete itself.
func (svc *Service) Delete(id, currentUserID string) error {
	if id == currentUserID {
		return core.NewValidationError(ErrOwnAccount, core.FieldError{Field: "id", Error: ErrOwnAccount.Error()})
	}
	return svc.repo.DeleteUserByID(id)
}

package state

import (
	"strings"

	"github.com/google/uuid"

	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
)

type staffRepository struct {
	db *DB
}

func NewStaffRepository(db *DB) staff.Repository {
	return &staffRepository{db: db}
}

func (repo *staffRepository) CheckUsernameUniqueness(username string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.users {
		if strings.EqualFold(usr.Username, username) {
			return staff.ErrUsernameExists
		}
	}
	return nil
}

func (repo *staffRepository) CreateUser(usr staff.User) (staff.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr.ID = uuid.NewString()
	repo.db.users = append(repo.db.users, usr)
	repo.db.snapshot()
	return usr, nil
}

func (repo *staffRepository) QueryAllUsers() ([]staff.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]staff.User, len(repo.db.users))
	copy(users, repo.db.users)
	return users, nil
}

func (repo *staffRepository) GetUserByID(id string) (staff.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return staff.User{}, staff.ErrNotFound
}

func (repo *staffRepository) GetUserByUsername(username string) (staff.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.users {
		if strings.EqualFold(usr.Username, username) {
			return usr, nil
		}
	}
	return staff.User{}, staff.ErrNotFound
}

func (repo *staffRepository) DeleteUserByID(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, usr := range repo.db.users {
		if usr.ID == id {
			repo.db.users = append(repo.db.users[:i], repo.db.users[i+1:]...)
			repo.db.snapshot()
			return nil
		}
	}
	return staff.ErrNotFound
}

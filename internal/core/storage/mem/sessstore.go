package mem

import (
	"sync"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
)

type SessionMemStorage struct {
	sessions map[string]*model.Session
	mtx      *sync.RWMutex
}

func NewSessionMemStorage() *SessionMemStorage {
	return &SessionMemStorage{
		sessions: map[string]*model.Session{},
		mtx:      &sync.RWMutex{},
	}
}

// Get returns nil for an unknown id.
func (storage *SessionMemStorage) Get(id string) (*model.Session, error) {
	storage.mtx.RLock()
	defer storage.mtx.RUnlock()
	return storage.sessions[id], nil
}

func (storage *SessionMemStorage) Save(sess *model.Session) error {
	storage.mtx.Lock()
	storage.sessions[sess.ID] = sess
	storage.mtx.Unlock()
	return nil
}

func (storage *SessionMemStorage) Len() int {
	storage.mtx.RLock()
	defer storage.mtx.RUnlock()
	return len(storage.sessions)
}

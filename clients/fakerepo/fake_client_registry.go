package fakerepo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-client-auth/clients"
)

var _ clients.Registry = (*FakeClientRegistry)(nil)

type FakeClientRegistry struct {
	clients map[string]*clients.Client
	lock    sync.RWMutex
}

func NewFakeClientRegistry() *FakeClientRegistry {
	return &FakeClientRegistry{
		clients: make(map[string]*clients.Client),
	}
}

func (r *FakeClientRegistry) Upsert(clientData *clients.Client) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if clientData.ID == "" {
		clientData.ID = uuid.New().String()
	}
	r.clients[clientData.ID] = clientData
	return nil
}

func (r *FakeClientRegistry) Delete(clientID string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.clients, clientID)
	return nil
}

func (r *FakeClientRegistry) FindByClientID(clientID string) (*clients.Client, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	client, ok := r.clients[clientID]
	if !ok {
		return nil, clients.ErrClientNotFound
	}
	return client, nil
}

package repofakes

import (
	"sync"

	"github.com/jrsteele09/go-client-auth/authorizations"
)

var _ authorizations.Store = (*FakeAuthorizationStore)(nil)

type storeKey struct {
	token     string
	tokenType authorizations.TokenType
}

type FakeAuthorizationStore struct {
	records map[storeKey]*authorizations.Record
	lock    sync.RWMutex
}

func NewFakeAuthorizationStore() *FakeAuthorizationStore {
	return &FakeAuthorizationStore{
		records: make(map[storeKey]*authorizations.Record),
	}
}

func (s *FakeAuthorizationStore) Upsert(token string, tokenType authorizations.TokenType, record *authorizations.Record) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.records[storeKey{token: token, tokenType: tokenType}] = record
	return nil
}

func (s *FakeAuthorizationStore) Delete(token string, tokenType authorizations.TokenType) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.records, storeKey{token: token, tokenType: tokenType})
	return nil
}

func (s *FakeAuthorizationStore) FindByToken(token string, tokenType authorizations.TokenType) (*authorizations.Record, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	record, ok := s.records[storeKey{token: token, tokenType: tokenType}]
	if !ok {
		return nil, authorizations.ErrRecordNotFound
	}
	return record, nil
}

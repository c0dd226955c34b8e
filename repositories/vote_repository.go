package repositories

import (
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type VoteRepository interface {
	Get(subject models.SubjectType, subjectID, voterID string) models.VoteState
	// Set records the voter's new state; VoteNone removes the record.
	Set(record models.VoteRecord) error
	DeleteBySubject(subject models.SubjectType, subjectID string) error
}

type voteRepository struct {
	mu    sync.RWMutex
	store *store.Store
	votes []models.VoteRecord
}

func NewVoteRepository(s *store.Store) (VoteRepository, error) {
	r := &voteRepository{store: s}
	if err := s.Load(store.KeyVotes, &r.votes); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *voteRepository) persist() error {
	return r.store.Save(store.KeyVotes, r.votes)
}

func (r *voteRepository) Get(subject models.SubjectType, subjectID, voterID string) models.VoteState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.votes {
		if v.SubjectType == subject && v.SubjectID == subjectID && v.VoterID == voterID {
			return v.State
		}
	}
	return models.VoteNone
}

func (r *voteRepository) Set(record models.VoteRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.votes {
		if v.SubjectType == record.SubjectType && v.SubjectID == record.SubjectID && v.VoterID == record.VoterID {
			if record.State == models.VoteNone {
				r.votes = append(r.votes[:i], r.votes[i+1:]...)
			} else {
				r.votes[i] = record
			}
			return r.persist()
		}
	}

	if record.State == models.VoteNone {
		return nil
	}
	r.votes = append(r.votes, record)
	return r.persist()
}

func (r *voteRepository) DeleteBySubject(subject models.SubjectType, subjectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.votes[:0]
	for _, v := range r.votes {
		if !(v.SubjectType == subject && v.SubjectID == subjectID) {
			kept = append(kept, v)
		}
	}
	r.votes = kept
	return r.persist()
}

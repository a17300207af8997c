package core

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Defaults for ServiceOptions fields left at zero.
const (
	DefaultSessionCapacity = 256
	DefaultSessionTTL      = time.Hour
	DefaultMaxRecords      = 10000
	DefaultMaxInputBytes   = 1 << 20
)

// ServiceOptions tunes the session store. Zero values use the defaults.
type ServiceOptions struct {
	SessionCapacity int           // sessions kept before LRU eviction
	SessionTTL      time.Duration // idle time before a session expires
	MaxRecords      int           // records one session may hold
	MaxInputBytes   int           // largest paste accepted, in bytes
}

// Service provides the session-based workflow on top of the pure pipeline:
// create a session, parse pastes into it, edit records, encode a document.
//
// Sessions live in an in-memory LRU with a TTL, so an abandoned browser tab
// costs nothing once the TTL passes. Nothing is persisted; an encoded
// document is the only artifact that leaves the process.
type Service struct {
	opts ServiceOptions

	// mu serializes record mutations. The LRU itself is safe for
	// concurrent use, but the record slices inside sessions are not.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

type session struct {
	id      string
	ids     IDSequence
	records []LabelRecord
	created time.Time
	updated time.Time
}

// SessionView is a read-only snapshot of a session.
type SessionView struct {
	ID        string        `json:"id"`
	Records   []LabelRecord `json:"records"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// NewService creates a Service with its session store.
func NewService(opts ServiceOptions) *Service {
	if opts.SessionCapacity <= 0 {
		opts.SessionCapacity = DefaultSessionCapacity
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.MaxRecords <= 0 {
		opts.MaxRecords = DefaultMaxRecords
	}
	if opts.MaxInputBytes <= 0 {
		opts.MaxInputBytes = DefaultMaxInputBytes
	}

	return &Service{
		opts:     opts,
		sessions: expirable.NewLRU[string, *session](opts.SessionCapacity, nil, opts.SessionTTL),
	}
}

// CreateSession starts an empty session and returns its snapshot.
func (s *Service) CreateSession() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := &session{
		id:      uuid.New().String(),
		created: now,
		updated: now,
	}
	s.sessions.Add(sess.id, sess)
	return sess.view()
}

// Session returns a snapshot of an existing session.
func (s *Service) Session(id string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(), nil
}

// DeleteSession removes a session. Deleting an unknown session is an error
// so clients learn their session already expired.
func (s *Service) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	s.sessions.Remove(id)
	return nil
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	return s.sessions.Len()
}

// ParseInto parses pasted text with the named schema and appends the
// resulting records to the session. Existing records are untouched, so a
// user can paste several exports into one batch. Record ids keep counting
// from where the previous paste stopped.
func (s *Service) ParseInto(id, rawText, schemaKey string) (*ParseResult, error) {
	if len(rawText) > s.opts.MaxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(rawText), s.opts.MaxInputBytes)
	}

	schema, ok := GetSchema(schemaKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, schemaKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	result, err := Parse(rawText, schema, &sess.ids)
	if err != nil {
		return nil, err
	}

	if len(sess.records)+len(result.Records) > s.opts.MaxRecords {
		return nil, fmt.Errorf("%w (%d of %d)", ErrSessionFull, len(sess.records), s.opts.MaxRecords)
	}

	sess.records = append(sess.records, result.Records...)
	s.touch(sess)
	return result, nil
}

// AddRecord appends a single manually entered record to the session.
// Fields are cleaned the same way parsed cells are.
func (s *Service) AddRecord(id, code, description string, quantity int) (LabelRecord, error) {
	code = strings.TrimSpace(code)
	description = CleanField(description)
	if code == "" {
		return LabelRecord{}, fmt.Errorf("%w: code", ErrEmptyField)
	}
	if description == "" {
		return LabelRecord{}, fmt.Errorf("%w: description", ErrEmptyField)
	}
	if quantity < 0 {
		return LabelRecord{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return LabelRecord{}, err
	}
	if len(sess.records)+1 > s.opts.MaxRecords {
		return LabelRecord{}, fmt.Errorf("%w (%d of %d)", ErrSessionFull, len(sess.records), s.opts.MaxRecords)
	}

	rec := LabelRecord{
		ID:          sess.ids.Next(),
		Code:        code,
		Description: description,
		Quantity:    quantity,
	}
	sess.records = append(sess.records, rec)
	s.touch(sess)
	return rec, nil
}

// SetQuantity changes the label quantity of one record. Zero is allowed;
// the encoder simply emits no blocks for it.
func (s *Service) SetQuantity(id, recordID string, quantity int) (LabelRecord, error) {
	if quantity < 0 {
		return LabelRecord{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return LabelRecord{}, err
	}

	i := sess.find(recordID)
	if i < 0 {
		return LabelRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}

	sess.records[i].Quantity = quantity
	s.touch(sess)
	return sess.records[i], nil
}

// RemoveRecord deletes one record from the session.
func (s *Service) RemoveRecord(id, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return err
	}

	i := sess.find(recordID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}

	sess.records = append(sess.records[:i], sess.records[i+1:]...)
	s.touch(sess)
	return nil
}

// ClearRecords empties the session without destroying it, so the next
// paste starts a fresh batch in the same session.
func (s *Service) ClearRecords(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return err
	}

	sess.records = nil
	s.touch(sess)
	return nil
}

// Records returns a copy of the session's records in insertion order.
func (s *Service) Records(id string) ([]LabelRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	records := make([]LabelRecord, len(sess.records))
	copy(records, sess.records)
	return records, nil
}

// EncodeSession renders the session's records with the named profile and
// returns the document along with a timestamped download name. The session
// is left untouched so the user can re-encode with a different profile.
func (s *Service) EncodeSession(id, profileKey string) ([]byte, string, error) {
	profile, ok := GetProfile(profileKey)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownProfile, profileKey)
	}

	records, err := s.Records(id)
	if err != nil {
		return nil, "", err
	}

	doc, err := EncodeDocument(records, profile)
	if err != nil {
		return nil, "", err
	}
	return doc, DocumentFileName(time.Now()), nil
}

// EncodeText is the stateless one-shot conversion: parse pasted text and
// encode it in a single call, no session required. Used by the CLI and the
// convert endpoint.
func (s *Service) EncodeText(rawText, schemaKey, profileKey string) ([]byte, *ParseResult, string, error) {
	if len(rawText) > s.opts.MaxInputBytes {
		return nil, nil, "", fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(rawText), s.opts.MaxInputBytes)
	}

	schema, ok := GetSchema(schemaKey)
	if !ok {
		return nil, nil, "", fmt.Errorf("%w: %s", ErrUnknownSchema, schemaKey)
	}
	profile, ok := GetProfile(profileKey)
	if !ok {
		return nil, nil, "", fmt.Errorf("%w: %s", ErrUnknownProfile, profileKey)
	}

	var ids IDSequence
	result, err := Parse(rawText, schema, &ids)
	if err != nil {
		return nil, nil, "", err
	}

	doc, err := EncodeDocument(result.Records, profile)
	if err != nil {
		return nil, nil, "", err
	}
	return doc, result, DocumentFileName(time.Now()), nil
}

// DocumentFileName returns the download name for a document generated at t.
func DocumentFileName(t time.Time) string {
	return "etiquetas-" + t.Format("20060102-150405") + ".prn"
}

// get looks up a live session. Callers hold s.mu.
func (s *Service) get(id string) (*session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// touch records a mutation: the updated time moves forward and the session
// is re-added so its TTL restarts. Idle time, not age, expires a session.
func (s *Service) touch(sess *session) {
	sess.updated = time.Now()
	s.sessions.Add(sess.id, sess)
}

func (sess *session) find(recordID string) int {
	for i := range sess.records {
		if sess.records[i].ID == recordID {
			return i
		}
	}
	return -1
}

func (sess *session) view() SessionView {
	records := make([]LabelRecord, len(sess.records))
	copy(records, sess.records)
	return SessionView{
		ID:        sess.id,
		Records:   records,
		CreatedAt: sess.created,
		UpdatedAt: sess.updated,
	}
}

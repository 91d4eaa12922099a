package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"regalis_backend/internal/feature/identity/domain/entity"
)

const (
	defaultAuditQueueSize = 64
	defaultAuditTimeout   = 10 * time.Second

	// dummyPassword is hashed once at Open so that a login for an unknown
	// email runs the same proof comparison as one for a known email.
	dummyPassword = "regalis-dummy-password"
)

// Store owns the users, projects and currentUser collections.
//
// All reads and writes run on a single goroutine; callers submit a request
// and wait for its result. Every operation is still a read-modify-write of a
// whole collection, so two Store instances sharing one backend can lose each
// other's updates. Run one Store per backend.
type Store struct {
	kv     KVStore
	proofs ProofScheme
	audit  AuditSink
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	auditQueueSize int
	auditTimeout   time.Duration
	dummyProof     string

	ops       chan func()
	quit      chan struct{}
	done      chan struct{}
	events    chan entity.AuditEvent
	auditDone chan struct{}
	closeOnce sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithAuditSink sets the sink notified after successful signups and logins.
func WithAuditSink(sink AuditSink) Option {
	return func(s *Store) {
		if sink != nil {
			s.audit = sink
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the opaque id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithAuditQueueSize sets how many audit events may wait for delivery.
func WithAuditQueueSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.auditQueueSize = n
		}
	}
}

// Open starts the store on top of kv and reports the session found in storage.
func Open(ctx context.Context, kv KVStore, proofs ProofScheme, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("key/value store is required")
	}
	if proofs == nil {
		return nil, errors.New("proof scheme is required")
	}

	s := &Store{
		kv:             kv,
		proofs:         proofs,
		audit:          nopAuditSink{},
		logger:         slog.Default(),
		now:            time.Now,
		newID:          func() string { return ulid.Make().String() },
		auditQueueSize: defaultAuditQueueSize,
		auditTimeout:   defaultAuditTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := proofs.Compute(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy proof: %w", err)
	}
	s.dummyProof = dummy

	session, found, err := readSession(ctx, kv)
	if err != nil {
		return nil, err
	}
	if found {
		s.logger.Info("session restored", "user_id", session.ID, "email", session.Email)
	} else {
		s.logger.Info("no stored session, starting anonymous")
	}

	s.ops = make(chan func())
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	s.events = make(chan entity.AuditEvent, s.auditQueueSize)
	s.auditDone = make(chan struct{})

	go s.run()
	go s.deliverAudit()

	return s, nil
}

// Close stops the store. Queued audit events are delivered before it returns.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
		close(s.events)
		<-s.auditDone
	})
	return nil
}

func (s *Store) run() {
	defer close(s.done)
	for {
		select {
		case op := <-s.ops:
			op()
		case <-s.quit:
			return
		}
	}
}

// do runs fn on the store goroutine and waits for it.
// Cancelling ctx only prevents submission; an accepted operation always runs
// to completion.
func (s *Store) do(ctx context.Context, fn func(ctx context.Context)) error {
	opCtx := context.WithoutCancel(ctx)
	finished := make(chan struct{})
	op := func() {
		defer close(finished)
		fn(opCtx)
	}

	select {
	case s.ops <- op:
	case <-s.quit:
		return ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-finished
	return nil
}

// Signup registers a user and makes it the current session.
func (s *Store) Signup(ctx context.Context, name, email, password string) (entity.PublicUser, error) {
	proof, err := s.proofs.Compute(password)
	if err != nil {
		return entity.PublicUser{}, fmt.Errorf("failed to compute password proof: %w", err)
	}

	var user entity.PublicUser
	if submitErr := s.do(ctx, func(ctx context.Context) {
		user, err = s.insertUser(ctx, name, email, proof)
	}); submitErr != nil {
		return entity.PublicUser{}, submitErr
	}
	return user, err
}

// Login authenticates email/password and makes the user the current session.
func (s *Store) Login(ctx context.Context, email, password string) (entity.PublicUser, error) {
	var (
		user  entity.User
		found bool
		err   error
	)
	if submitErr := s.do(ctx, func(ctx context.Context) {
		user, found, err = s.findUserByEmail(ctx, email)
	}); submitErr != nil {
		return entity.PublicUser{}, submitErr
	}
	if err != nil {
		return entity.PublicUser{}, err
	}

	proof := s.dummyProof
	if found {
		proof = user.PasswordProof
	}
	matched := s.proofs.Verify(proof, password)
	if !found || !matched {
		return entity.PublicUser{}, ErrInvalidCredentials
	}

	public := user.Public()
	if submitErr := s.do(ctx, func(ctx context.Context) {
		if err = writeSession(ctx, s.kv, public); err == nil {
			s.emit(entity.AuditLogIn, user.Email)
		}
	}); submitErr != nil {
		return entity.PublicUser{}, submitErr
	}
	if err != nil {
		return entity.PublicUser{}, err
	}
	return public, nil
}

// Logout clears the current session. It is not an error when nobody is logged in.
func (s *Store) Logout(ctx context.Context) error {
	var err error
	if submitErr := s.do(ctx, func(ctx context.Context) {
		if delErr := s.kv.Delete(ctx, KeyCurrentUser); delErr != nil {
			err = fmt.Errorf("failed to clear session: %w", delErr)
		}
	}); submitErr != nil {
		return submitErr
	}
	return err
}

// EndSession clears the current session only when it belongs to userID.
// It reports whether a session was cleared.
func (s *Store) EndSession(ctx context.Context, userID string) (bool, error) {
	var (
		cleared bool
		err     error
	)
	if submitErr := s.do(ctx, func(ctx context.Context) {
		current, found, readErr := readSession(ctx, s.kv)
		if readErr != nil {
			err = readErr
			return
		}
		if !found || current.ID != userID {
			return
		}
		if delErr := s.kv.Delete(ctx, KeyCurrentUser); delErr != nil {
			err = fmt.Errorf("failed to clear session: %w", delErr)
			return
		}
		cleared = true
	}); submitErr != nil {
		return false, submitErr
	}
	return cleared, err
}

// CurrentSession returns the stored session pointer, if any.
// It does not check that the referenced user still exists.
func (s *Store) CurrentSession(ctx context.Context) (entity.PublicUser, bool, error) {
	var (
		user  entity.PublicUser
		found bool
		err   error
	)
	if submitErr := s.do(ctx, func(ctx context.Context) {
		user, found, err = readSession(ctx, s.kv)
	}); submitErr != nil {
		return entity.PublicUser{}, false, submitErr
	}
	return user, found, err
}

// SaveProject stores a generated artifact for userID.
func (s *Store) SaveProject(ctx context.Context, userID, name, prompt, code string, typ entity.ProjectType) (entity.Project, error) {
	if !typ.Valid() {
		return entity.Project{}, fmt.Errorf("%w: %q", ErrInvalidProjectType, typ)
	}

	var (
		project entity.Project
		err     error
	)
	if submitErr := s.do(ctx, func(ctx context.Context) {
		project, err = s.insertProject(ctx, userID, name, prompt, code, typ)
	}); submitErr != nil {
		return entity.Project{}, submitErr
	}
	return project, err
}

// ListProjects returns the projects of userID, newest first.
func (s *Store) ListProjects(ctx context.Context, userID string) ([]entity.Project, error) {
	var (
		projects []entity.Project
		err      error
	)
	if submitErr := s.do(ctx, func(ctx context.Context) {
		projects, err = s.projectsOf(ctx, userID)
	}); submitErr != nil {
		return nil, submitErr
	}
	return projects, err
}

package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"driveincinema/internal/entity"
	"driveincinema/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(hash string, password string) bool { return hash == "hashed:"+password }

type fakeIssuer struct{}

func (fakeIssuer) IssueAccessToken(user entity.User, sessionID uuid.UUID) (string, time.Duration, error) {
	return user.ID.String() + "|" + sessionID.String(), time.Hour, nil
}

type sentCode struct {
	email   string
	code    string
	purpose entity.VerificationPurpose
}

type fakeEmailSender struct {
	sent []sentCode
}

func (f *fakeEmailSender) SendVerificationCode(_ context.Context, email string, code string) error {
	f.sent = append(f.sent, sentCode{email, code, entity.PurposeVerify})
	return nil
}

func (f *fakeEmailSender) SendPasswordResetCode(_ context.Context, email string, code string) error {
	f.sent = append(f.sent, sentCode{email, code, entity.PurposeReset})
	return nil
}

func (f *fakeEmailSender) last() sentCode {
	return f.sent[len(f.sent)-1]
}

type fakeCooldown struct {
	taken map[string]bool
}

func (f *fakeCooldown) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.taken == nil {
		f.taken = map[string]bool{}
	}
	if f.taken[key] {
		return false, nil
	}
	f.taken[key] = true
	return true, nil
}

type fakeUsers struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*entity.User
	calls int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) AddPoints(_ context.Context, id uuid.UUID, points int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	user, ok := f.byID[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	user.Points += points
	return user.Points, nil
}

func (f *fakeUsers) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byID)), nil
}

func (f *fakeUsers) byEmail(email string) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Email == email {
			return user
		}
	}
	return nil
}

type fakeSessions struct {
	byID map[uuid.UUID]*entity.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: map[uuid.UUID]*entity.Session{}}
}

func (f *fakeSessions) Create(_ context.Context, s *entity.Session) error {
	s.ID = uuid.New()
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessions) FindActiveByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	s, ok := f.byID[id]
	if !ok || !s.Active(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessions) Revoke(_ context.Context, id uuid.UUID) error {
	if s, ok := f.byID[id]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessions) RevokeAllByUser(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, s := range f.byID {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

type fakeTokens struct {
	users      *fakeUsers
	sessions   *fakeSessions
	byIdentity map[string]entity.VerificationToken
}

func newFakeTokens(users *fakeUsers, sessions *fakeSessions) *fakeTokens {
	return &fakeTokens{users: users, sessions: sessions, byIdentity: map[string]entity.VerificationToken{}}
}

func (f *fakeTokens) Replace(_ context.Context, t *entity.VerificationToken) error {
	f.byIdentity[t.Identifier] = *t
	return nil
}

func (f *fakeTokens) Find(_ context.Context, identifier string, token string) (*entity.VerificationToken, error) {
	t, ok := f.byIdentity[identifier]
	if !ok || t.Token != token {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTokens) take(identifier string, token string) error {
	t, ok := f.byIdentity[identifier]
	if !ok || t.Token != token {
		return repository.ErrNotFound
	}
	delete(f.byIdentity, identifier)
	return nil
}

func (f *fakeTokens) ConsumeVerification(_ context.Context, identifier string, token string, at time.Time) error {
	if err := f.take(identifier, token); err != nil {
		return err
	}
	if user := f.users.byEmail(identifier); user != nil {
		user.EmailVerifiedAt = &at
	}
	return nil
}

func (f *fakeTokens) ConsumeReset(ctx context.Context, identifier string, token string, passwordHash string, at time.Time) error {
	if err := f.take(identifier, token); err != nil {
		return err
	}
	user := f.users.byEmail(identifier)
	if user == nil {
		return repository.ErrNotFound
	}
	user.PasswordHash = &passwordHash
	if user.EmailVerifiedAt == nil {
		user.EmailVerifiedAt = &at
	}
	return f.sessions.RevokeAllByUser(ctx, user.ID)
}

type fakeSecurityLogs struct {
	entries []entity.SecurityLog
}

func (f *fakeSecurityLogs) Log(_ context.Context, log *entity.SecurityLog) error {
	f.entries = append(f.entries, *log)
	return nil
}

func (f *fakeSecurityLogs) actions() []entity.SecurityAction {
	actions := make([]entity.SecurityAction, 0, len(f.entries))
	for _, entry := range f.entries {
		actions = append(actions, entry.Action)
	}
	return actions
}

type fakeProducts struct {
	byID map[uuid.UUID]*entity.Product
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{byID: map[uuid.UUID]*entity.Product{}}
}

func (f *fakeProducts) List(_ context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func (f *fakeProducts) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProducts) duplicate(id uuid.UUID, name string, category string) bool {
	for _, p := range f.byID {
		if p.ID != id && p.Name == name && p.Category == category {
			return true
		}
	}
	return false
}

func (f *fakeProducts) Create(_ context.Context, product *entity.Product) error {
	if f.duplicate(uuid.Nil, product.Name, product.Category) {
		return repository.ErrDuplicate
	}
	product.ID = uuid.New()
	copied := *product
	f.byID[product.ID] = &copied
	return nil
}

func (f *fakeProducts) Update(_ context.Context, id uuid.UUID, fields map[string]any) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	next := *p
	for key, value := range fields {
		switch key {
		case "name":
			next.Name = value.(string)
		case "description":
			next.Description = value.(string)
		case "category":
			next.Category = value.(string)
		case "image":
			next.Image = value.(string)
		case "available":
			next.Available = value.(bool)
		case "price":
			next.Price = value.(decimal.Decimal)
		}
	}
	if f.duplicate(id, next.Name, next.Category) {
		return nil, repository.ErrDuplicate
	}
	*p = next
	copied := next
	return &copied, nil
}

func (f *fakeProducts) Delete(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.byID, id)
	return p, nil
}

func (f *fakeProducts) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeOrders struct {
	byID map[uuid.UUID]*entity.Order
	seq  int
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{byID: map[uuid.UUID]*entity.Order{}}
}

func (f *fakeOrders) Create(_ context.Context, order *entity.Order) error {
	for _, o := range f.byID {
		if o.Status != entity.OrderCancelled && o.MovieID == order.MovieID &&
			o.Date == order.Date && o.Time == order.Time && o.Slot == order.Slot {
			return repository.ErrDuplicate
		}
	}
	f.seq++
	order.ID = uuid.New()
	order.CreatedAt = time.Unix(int64(f.seq), 0)
	copied := *order
	f.byID[order.ID] = &copied
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrders) sorted(keep func(entity.Order) bool) []entity.Order {
	orders := []entity.Order{}
	for _, o := range f.byID {
		if keep(*o) {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders
}

func (f *fakeOrders) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Order, error) {
	return f.sorted(func(o entity.Order) bool { return o.UserID == userID }), nil
}

func (f *fakeOrders) ListAll(_ context.Context) ([]entity.Order, error) {
	return f.sorted(func(entity.Order) bool { return true }), nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if o.Status != from {
		return nil, repository.ErrStale
	}
	o.Status = to
	copied := *o
	return &copied, nil
}

func (f *fakeOrders) CountByStatus(_ context.Context) (map[entity.OrderStatus]int64, error) {
	counts := map[entity.OrderStatus]int64{}
	for _, o := range f.byID {
		counts[o.Status]++
	}
	return counts, nil
}

type fakeQuizzes struct {
	byID map[uuid.UUID]*entity.Quiz
}

func newFakeQuizzes() *fakeQuizzes {
	return &fakeQuizzes{byID: map[uuid.UUID]*entity.Quiz{}}
}

func (f *fakeQuizzes) Activate(_ context.Context, quiz *entity.Quiz) error {
	for _, q := range f.byID {
		q.IsActive = false
	}
	quiz.ID = uuid.New()
	quiz.IsActive = true
	copied := *quiz
	f.byID[quiz.ID] = &copied
	return nil
}

func (f *fakeQuizzes) FindActive(_ context.Context) (*entity.Quiz, error) {
	for _, q := range f.byID {
		if q.IsActive {
			copied := *q
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizzes) FindByID(_ context.Context, id uuid.UUID) (*entity.Quiz, error) {
	q, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *q
	return &copied, nil
}

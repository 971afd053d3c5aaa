package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
	pkgerrors "brixia-rugby/backend/pkg/errors"
)

// mockStore keeps every mock so tests can seed and inspect state.
type mockStore struct {
	users      *mockUserRepo
	categories *mockCategoryRepo
	locations  *mockTrainingLocationRepo
	players    *mockPlayerRepo
	staff      *mockStaffRepo
	sessions   *mockSessionRepo
	events     *mockEventRepo
	attendance *mockAttendanceRepo
	injuries   *mockInjuryRepo
	notes      *mockNoteRepo
}

func newMockRepository() (*repository.Repository, *mockStore) {
	st := &mockStore{
		users:      newMockUserRepo(),
		categories: newMockCategoryRepo(),
		locations:  newMockTrainingLocationRepo(),
		staff:      newMockStaffRepo(),
		events:     newMockEventRepo(),
		notes:      newMockNoteRepo(),
	}
	st.players = newMockPlayerRepo(st.categories)
	st.sessions = newMockSessionRepo()
	st.attendance = newMockAttendanceRepo(st.sessions, st.players)
	st.injuries = newMockInjuryRepo(st.players)
	st.notes.users = st.users
	st.categories.players = st.players

	repo := &repository.Repository{
		User:             st.users,
		Category:         st.categories,
		TrainingLocation: st.locations,
		Player:           st.players,
		Staff:            st.staff,
		Session:          st.sessions,
		Event:            st.events,
		Attendance:       st.attendance,
		Injury:           st.injuries,
		Note:             st.notes,
	}
	return repo, st
}

func stamp(createdAt *time.Time) {
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}

func inRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	stamp(&user.CreatedAt)
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) List(_ context.Context, filters *repository.UserListFilters, offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.users {
		if filters != nil && filters.Role != "" && u.Role != filters.Role {
			continue
		}
		if filters != nil && filters.Keyword != "" {
			kw := strings.ToLower(filters.Keyword)
			if !strings.Contains(strings.ToLower(u.Name), kw) && !strings.Contains(strings.ToLower(u.Email), kw) {
				continue
			}
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := int64(len(out))
	if offset >= len(out) {
		return []model.User{}, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock CategoryRepository ──

type mockCategoryRepo struct {
	cats    map[string]*model.Category
	players *mockPlayerRepo
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{cats: make(map[string]*model.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, cat *model.Category) error {
	if cat.CategoryID == "" {
		cat.CategoryID = uuid.NewString()
	}
	m.cats[cat.CategoryID] = cat
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	if c, ok := m.cats[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) GetByCode(_ context.Context, code string) (*model.Category, error) {
	for _, c := range m.cats {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) List(_ context.Context, includeInactive bool) ([]model.Category, error) {
	var result []model.Category
	for _, c := range m.cats {
		if !includeInactive && !c.IsActive {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, cat *model.Category) error {
	m.cats[cat.CategoryID] = cat
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.cats, id)
	return nil
}

func (m *mockCategoryRepo) CountPlayers(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	if m.players == nil {
		return counts, nil
	}
	for _, p := range m.players.players {
		if p.IsActive {
			counts[p.CategoryID]++
		}
	}
	return counts, nil
}

// ── Mock TrainingLocationRepository ──

// slice-backed: ListByCategory must keep insertion order
type mockTrainingLocationRepo struct {
	rows    []*model.TrainingLocation
	listErr error
}

func newMockTrainingLocationRepo() *mockTrainingLocationRepo {
	return &mockTrainingLocationRepo{}
}

func (m *mockTrainingLocationRepo) Create(_ context.Context, tl *model.TrainingLocation) error {
	if tl.TrainingLocationID == "" {
		tl.TrainingLocationID = uuid.NewString()
	}
	m.rows = append(m.rows, tl)
	return nil
}

func (m *mockTrainingLocationRepo) GetByID(_ context.Context, id string) (*model.TrainingLocation, error) {
	for _, tl := range m.rows {
		if tl.TrainingLocationID == id {
			return tl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrainingLocationRepo) ListByCategory(_ context.Context, categoryID string) ([]model.TrainingLocation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.TrainingLocation
	for _, tl := range m.rows {
		if tl.CategoryID == categoryID {
			result = append(result, *tl)
		}
	}
	return result, nil
}

func (m *mockTrainingLocationRepo) Update(_ context.Context, tl *model.TrainingLocation) error {
	for i, row := range m.rows {
		if row.TrainingLocationID == tl.TrainingLocationID {
			m.rows[i] = tl
		}
	}
	return nil
}

func (m *mockTrainingLocationRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.TrainingLocationID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}
	return nil
}

// ── Mock PlayerRepository ──

type mockPlayerRepo struct {
	players    map[string]*model.Player
	categories *mockCategoryRepo
}

func newMockPlayerRepo(categories *mockCategoryRepo) *mockPlayerRepo {
	return &mockPlayerRepo{players: make(map[string]*model.Player), categories: categories}
}

func (m *mockPlayerRepo) Create(_ context.Context, p *model.Player) error {
	if p.PlayerID == "" {
		p.PlayerID = uuid.NewString()
	}
	if p.Version == 0 {
		p.Version = 1
	}
	m.players[p.PlayerID] = p
	return nil
}

func (m *mockPlayerRepo) GetByID(_ context.Context, id string) (*model.Player, error) {
	p, ok := m.players[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if m.categories != nil {
		p.Category = m.categories.cats[p.CategoryID]
	}
	return p, nil
}

func (m *mockPlayerRepo) List(_ context.Context, f repository.PlayerFilter, offset, limit int) ([]model.Player, int64, error) {
	var all []model.Player
	kw := strings.ToLower(f.Keyword)
	for _, p := range m.players {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if kw != "" && !strings.Contains(strings.ToLower(p.FirstName+" "+p.LastName), kw) {
			continue
		}
		all = append(all, *p)
	}
	sortPlayers(all)

	total := int64(len(all))
	if offset >= len(all) {
		return []model.Player{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockPlayerRepo) ListByCategory(_ context.Context, categoryID string) ([]model.Player, error) {
	var result []model.Player
	for _, p := range m.players {
		if p.CategoryID == categoryID && p.IsActive {
			result = append(result, *p)
		}
	}
	sortPlayers(result)
	return result, nil
}

func (m *mockPlayerRepo) Update(_ context.Context, p *model.Player) error {
	cur, ok := m.players[p.PlayerID]
	if !ok || cur.Version != p.Version {
		return pkgerrors.ErrOptimisticLock
	}
	p.Version++
	m.players[p.PlayerID] = p
	return nil
}

func (m *mockPlayerRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.players, id)
	return nil
}

func sortPlayers(list []model.Player) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].FullName() < list[j].FullName()
	})
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staff map[string]*model.Staff
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, s *model.Staff) error {
	if s.StaffID == "" {
		s.StaffID = uuid.NewString()
	}
	m.staff[s.StaffID] = s
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context, categoryID, role string) ([]model.Staff, error) {
	var result []model.Staff
	for _, s := range m.staff {
		if categoryID != "" && (s.CategoryID == nil || *s.CategoryID != categoryID) {
			continue
		}
		if role != "" && s.Role != role {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LastName < result[j].LastName })
	return result, nil
}

func (m *mockStaffRepo) Update(_ context.Context, s *model.Staff) error {
	m.staff[s.StaffID] = s
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.staff, id)
	return nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions  map[string]*model.Session
	bulkCalls int
	bulkErr   error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*model.Session)}
}

func sessionSlotKey(s *model.Session) string {
	return s.CategoryID + "|" + time.Time(s.SessionDate).Format(dateLayout) + "|" + s.Location
}

// Create enforces the unique slot key like uq_session_slot.
func (m *mockSessionRepo) Create(_ context.Context, s *model.Session) error {
	for _, existing := range m.sessions {
		if sessionSlotKey(existing) == sessionSlotKey(s) {
			return gorm.ErrDuplicatedKey
		}
	}
	if s.SessionID == "" {
		s.SessionID = uuid.NewString()
	}
	stamp(&s.CreatedAt)
	m.sessions[s.SessionID] = s
	return nil
}

// BulkCreate mirrors ON CONFLICT DO NOTHING on the slot key.
func (m *mockSessionRepo) BulkCreate(ctx context.Context, sessions []model.Session) (int64, error) {
	m.bulkCalls++
	if m.bulkErr != nil {
		return 0, m.bulkErr
	}
	taken := make(map[string]bool, len(m.sessions))
	for _, s := range m.sessions {
		taken[sessionSlotKey(s)] = true
	}

	var inserted int64
	for i := range sessions {
		row := sessions[i]
		key := sessionSlotKey(&row)
		if taken[key] {
			continue
		}
		taken[key] = true
		_ = m.Create(ctx, &row)
		inserted++
	}
	return inserted, nil
}

// GetByID returns a copy so unsaved edits stay out of the store, as with a
// real database row.
func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	if s, ok := m.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) FindBySlot(_ context.Context, categoryID string, date datatypes.Date, location string) (*model.Session, error) {
	key := sessionSlotKey(&model.Session{CategoryID: categoryID, SessionDate: date, Location: location})
	for _, s := range m.sessions {
		if sessionSlotKey(s) == key {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) filter(f repository.SessionFilter) []model.Session {
	var result []model.Session
	for _, s := range m.sessions {
		if f.CategoryID != "" && s.CategoryID != f.CategoryID {
			continue
		}
		if !inRange(time.Time(s.SessionDate), f.From, f.To) {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		di, dj := time.Time(result[i].SessionDate), time.Time(result[j].SessionDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return result[i].Location < result[j].Location
	})
	return result
}

func (m *mockSessionRepo) List(_ context.Context, f repository.SessionFilter, offset, limit int) ([]model.Session, int64, error) {
	all := m.filter(f)
	total := int64(len(all))
	if offset >= len(all) {
		return []model.Session{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockSessionRepo) ListAll(_ context.Context, f repository.SessionFilter) ([]model.Session, error) {
	return m.filter(f), nil
}

func (m *mockSessionRepo) Update(_ context.Context, s *model.Session) error {
	cur, ok := m.sessions[s.SessionID]
	if !ok || cur.Version != s.Version {
		return pkgerrors.ErrOptimisticLock
	}
	s.Version++
	m.sessions[s.SessionID] = s
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, e *model.Event) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	m.events[e.EventID] = e
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, f repository.EventFilter) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if f.CategoryID != "" && e.CategoryID != nil && *e.CategoryID != f.CategoryID {
			continue
		}
		if f.EventType != "" && e.EventType != f.EventType {
			continue
		}
		if !inRange(time.Time(e.EventDate), f.From, f.To) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return time.Time(result[i].EventDate).Before(time.Time(result[j].EventDate))
	})
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, e *model.Event) error {
	m.events[e.EventID] = e
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string) error {
	delete(m.events, id)
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	rows     map[string]*model.Attendance // key: session_id:player_id
	sessions *mockSessionRepo
	players  *mockPlayerRepo
}

func newMockAttendanceRepo(sessions *mockSessionRepo, players *mockPlayerRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		rows:     make(map[string]*model.Attendance),
		sessions: sessions,
		players:  players,
	}
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, rows []model.Attendance) error {
	for i := range rows {
		row := rows[i]
		key := row.SessionID + ":" + row.PlayerID
		if cur, ok := m.rows[key]; ok {
			cur.Status = row.Status
			cur.Note = row.Note
			cur.UpdatedBy = row.UpdatedBy
			continue
		}
		if row.AttendanceID == "" {
			row.AttendanceID = uuid.NewString()
		}
		m.rows[key] = &row
	}
	return nil
}

func (m *mockAttendanceRepo) preload(a model.Attendance) model.Attendance {
	a.Session = m.sessions.sessions[a.SessionID]
	a.Player = m.players.players[a.PlayerID]
	return a
}

func (m *mockAttendanceRepo) ListBySession(_ context.Context, sessionID string) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.rows {
		if a.SessionID == sessionID {
			result = append(result, m.preload(*a))
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) List(_ context.Context, f repository.AttendanceFilter) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.rows {
		row := m.preload(*a)
		if f.SessionID != "" && row.SessionID != f.SessionID {
			continue
		}
		if f.PlayerID != "" && row.PlayerID != f.PlayerID {
			continue
		}
		if f.Status != "" && row.Status != f.Status {
			continue
		}
		if row.Session == nil {
			continue
		}
		if f.CategoryID != "" && row.Session.CategoryID != f.CategoryID {
			continue
		}
		if !inRange(time.Time(row.Session.SessionDate), f.From, f.To) {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

// ── Mock InjuryRepository ──

type mockInjuryRepo struct {
	injuries map[string]*model.Injury
	players  *mockPlayerRepo
}

func newMockInjuryRepo(players *mockPlayerRepo) *mockInjuryRepo {
	return &mockInjuryRepo{injuries: make(map[string]*model.Injury), players: players}
}

func (m *mockInjuryRepo) Create(_ context.Context, inj *model.Injury) error {
	if inj.InjuryID == "" {
		inj.InjuryID = uuid.NewString()
	}
	m.injuries[inj.InjuryID] = inj
	return nil
}

func (m *mockInjuryRepo) GetByID(_ context.Context, id string) (*model.Injury, error) {
	inj, ok := m.injuries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	inj.Player = m.players.players[inj.PlayerID]
	return inj, nil
}

func (m *mockInjuryRepo) List(_ context.Context, f repository.InjuryFilter) ([]model.Injury, error) {
	var result []model.Injury
	for _, inj := range m.injuries {
		p := m.players.players[inj.PlayerID]
		if f.PlayerID != "" && inj.PlayerID != f.PlayerID {
			continue
		}
		if f.CategoryID != "" && (p == nil || p.CategoryID != f.CategoryID) {
			continue
		}
		if f.ActiveOnly && !inj.IsActive() {
			continue
		}
		row := *inj
		row.Player = p
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		return time.Time(result[i].InjuryDate).After(time.Time(result[j].InjuryDate))
	})
	return result, nil
}

func (m *mockInjuryRepo) Update(_ context.Context, inj *model.Injury) error {
	m.injuries[inj.InjuryID] = inj
	return nil
}

func (m *mockInjuryRepo) Delete(_ context.Context, id string) error {
	delete(m.injuries, id)
	return nil
}

// ── Mock NoteRepository ──

type mockNoteRepo struct {
	notes map[string]*model.Note
	users *mockUserRepo
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.Note)}
}

func (m *mockNoteRepo) Create(_ context.Context, n *model.Note) error {
	if n.NoteID == "" {
		n.NoteID = uuid.NewString()
	}
	stamp(&n.CreatedAt)
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	}
	m.notes[n.NoteID] = n
	return nil
}

func (m *mockNoteRepo) GetByID(_ context.Context, id string) (*model.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if m.users != nil {
		n.Author = m.users.users[n.AuthorID]
	}
	return n, nil
}

func (m *mockNoteRepo) ListByPlayer(_ context.Context, playerID string) ([]model.Note, error) {
	var result []model.Note
	for _, n := range m.notes {
		if n.PlayerID != playerID {
			continue
		}
		row := *n
		if m.users != nil {
			row.Author = m.users.users[n.AuthorID]
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockNoteRepo) Update(_ context.Context, n *model.Note) error {
	m.notes[n.NoteID] = n
	return nil
}

func (m *mockNoteRepo) Delete(_ context.Context, id string) error {
	delete(m.notes, id)
	return nil
}

// ── seed helpers ──

func seedCategory(st *mockStore, code string) *model.Category {
	c := &model.Category{Name: "Under " + strings.TrimPrefix(code, "U"), Code: code, IsActive: true}
	_ = st.categories.Create(context.Background(), c)
	return c
}

func seedPlayer(st *mockStore, categoryID, first, last string) *model.Player {
	p := &model.Player{CategoryID: categoryID, FirstName: first, LastName: last, IsActive: true}
	_ = st.players.Create(context.Background(), p)
	return p
}

func seedSession(st *mockStore, categoryID, date, location string) *model.Session {
	d, _ := time.Parse(dateLayout, date)
	s := &model.Session{CategoryID: categoryID, SessionDate: toDate(d), Location: location, Version: 1}
	_ = st.sessions.Create(context.Background(), s)
	return s
}

func seedSlot(st *mockStore, categoryID, location, weekday, start, end string) {
	_ = st.locations.Create(context.Background(), &model.TrainingLocation{
		CategoryID: categoryID,
		Location:   location,
		Weekday:    weekday,
		StartTime:  start,
		EndTime:    end,
	})
}
